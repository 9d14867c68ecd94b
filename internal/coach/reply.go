package coach

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// emptyReplyFallback is returned when the model's reply is empty after
// cleanup.
const emptyReplyFallback = "I've analyzed your situation and provided insights based on current market data. How can I help you further with your career transition?"

// truncationNotice is appended when a reply is cut for length.
const truncationNotice = "*Response truncated for brevity...*"

// maxReplyLength caps replies at roughly 600 words.
const maxReplyLength = 3000

var (
	headerRe      = regexp.MustCompile(`(?m)^#+\s*`)
	boldRe        = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRe      = regexp.MustCompile(`\*([^*]+)\*`)
	codeRe        = regexp.MustCompile("`([^`]+)`")
	bulletAfterRe = regexp.MustCompile(`([.!?:])\s*•`)
	bulletRe      = regexp.MustCompile(`•\s+`)
	spacesRe      = regexp.MustCompile(`[ \t]+`)
	leadSpaceRe   = regexp.MustCompile(`\n[ \t]+`)
	newlinesRe    = regexp.MustCompile(`\n{3,}`)
)

// CleanReply strips the markdown the system instruction forbids, normalizes
// bullets and whitespace, and enforces the length cap. An empty result is
// replaced by a generic reply.
func CleanReply(raw string) string {
	out := raw
	out = headerRe.ReplaceAllString(out, "")
	out = boldRe.ReplaceAllString(out, "$1")
	out = italicRe.ReplaceAllString(out, "$1")
	out = codeRe.ReplaceAllString(out, "$1")
	out = bulletAfterRe.ReplaceAllString(out, "$1\n\n-")
	out = bulletRe.ReplaceAllString(out, "\n- ")
	out = spacesRe.ReplaceAllString(out, " ")
	out = leadSpaceRe.ReplaceAllString(out, "\n")
	out = newlinesRe.ReplaceAllString(out, "\n\n")
	out = strings.TrimSpace(out)

	if len(out) < 10 {
		return emptyReplyFallback
	}
	return truncateReply(out)
}

// truncateReply cuts an overlong reply at a paragraph boundary when one
// falls late enough, then a sentence boundary, then hard.
func truncateReply(reply string) string {
	if len(reply) <= maxReplyLength {
		return reply
	}

	// The hard cut must not split a multibyte rune.
	cut := maxReplyLength
	for cut > 0 && !utf8.RuneStart(reply[cut]) {
		cut--
	}
	head := reply[:cut]
	if i := strings.LastIndex(head, "\n\n"); i > maxReplyLength*6/10 {
		return reply[:i] + "\n\n" + truncationNotice
	}
	if i := strings.LastIndex(head, "."); i > maxReplyLength*7/10 {
		return reply[:i+1] + "\n\n" + truncationNotice
	}
	return head + "...\n\n" + truncationNotice
}

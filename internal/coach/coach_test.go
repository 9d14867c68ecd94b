package coach

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlie2bored/shftrr/internal/llm"
)

type stubChatGateway struct {
	reply       string
	err         error
	calls       int
	gotSystem   string
	gotMessages []llm.ChatMessage
	gotTemp     float32
}

func (s *stubChatGateway) GenerateChat(_ context.Context, system string, messages []llm.ChatMessage, temperature float32) (string, error) {
	s.calls++
	s.gotSystem = system
	s.gotMessages = messages
	s.gotTemp = temperature
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func testCoachLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func chatRequest() *Request {
	return &Request{
		Messages: []Message{
			{Role: "user", Content: "I want out of accounting."},
		},
	}
}

func TestRespondSendsSystemInstructionAndHistory(t *testing.T) {
	gw := &stubChatGateway{reply: "That sounds exhausting, and it makes sense you want a change."}
	c := NewCoach(gw, testCoachLogger())

	reply, err := c.Respond(context.Background(), chatRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, gw.calls)
	assert.Contains(t, gw.gotSystem, "empathetic career coach")
	assert.Contains(t, gw.gotSystem, "NO BOLD TEXT")
	require.Len(t, gw.gotMessages, 1)
	assert.Equal(t, llm.RoleUser, gw.gotMessages[0].Role)
	assert.NotEmpty(t, reply)
}

func TestRespondInjectsResumeAndVentContext(t *testing.T) {
	gw := &stubChatGateway{reply: "Thanks for sharing that background with me."}
	c := NewCoach(gw, testCoachLogger())

	req := chatRequest()
	req.ResumeText = "Ten years in audit."
	req.VentText = "My manager rejects every idea."
	_, err := c.Respond(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, gw.gotSystem, "Context about the user:")
	assert.Contains(t, gw.gotSystem, "Resume: Ten years in audit.")
	assert.Contains(t, gw.gotSystem, "Current situation: My manager rejects every idea.")
}

func TestRespondOmitsContextBlockWhenAbsent(t *testing.T) {
	gw := &stubChatGateway{reply: "Let's dig into what a better week would look like."}
	c := NewCoach(gw, testCoachLogger())

	_, err := c.Respond(context.Background(), chatRequest())
	require.NoError(t, err)
	assert.NotContains(t, gw.gotSystem, "Context about the user:")
}

func TestRespondFoldsSystemTurnsIntoInstruction(t *testing.T) {
	gw := &stubChatGateway{reply: "Understood, keeping it brief."}
	c := NewCoach(gw, testCoachLogger())

	req := &Request{
		Messages: []Message{
			{Role: "system", Content: "The user prefers short answers."},
			{Role: "user", Content: "Where do I start?"},
		},
	}
	_, err := c.Respond(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, gw.gotSystem, "The user prefers short answers.")
	require.Len(t, gw.gotMessages, 1)
	assert.Equal(t, llm.RoleUser, gw.gotMessages[0].Role)
}

func TestRespondUsesDefaultTemperature(t *testing.T) {
	gw := &stubChatGateway{reply: "Here is a thought to sit with."}
	c := NewCoach(gw, testCoachLogger())

	_, err := c.Respond(context.Background(), chatRequest())
	require.NoError(t, err)
	assert.InDelta(t, 0.7, gw.gotTemp, 0.001)

	temp := float32(0.2)
	req := chatRequest()
	req.Temperature = &temp
	_, err = c.Respond(context.Background(), req)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, gw.gotTemp, 0.001)
}

func TestRespondRejectsInvalidRequests(t *testing.T) {
	c := NewCoach(&stubChatGateway{reply: "x"}, testCoachLogger())

	tests := []struct {
		name string
		req  *Request
	}{
		{"nil request", nil},
		{"no messages", &Request{}},
		{"bad role", &Request{Messages: []Message{{Role: "narrator", Content: "hi"}}}},
		{"empty content", &Request{Messages: []Message{{Role: "user", Content: ""}}}},
		{"only system turns", &Request{Messages: []Message{{Role: "system", Content: "hi"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Respond(context.Background(), tt.req)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestRespondWithoutGatewayReportsNotConfigured(t *testing.T) {
	c := NewCoach(nil, testCoachLogger())

	_, err := c.Respond(context.Background(), chatRequest())
	var notConfigured *ErrNotConfigured
	assert.ErrorAs(t, err, &notConfigured)
}

func TestRespondPropagatesGatewayError(t *testing.T) {
	gw := &stubChatGateway{err: errors.New("quota exceeded")}
	c := NewCoach(gw, testCoachLogger())

	_, err := c.Respond(context.Background(), chatRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestCleanReplyStripsForbiddenMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bold", "You **can** do this transition.", "You can do this transition."},
		{"headers", "## Next Steps\n\nStart with a skills audit today.", "Next Steps\n\nStart with a skills audit today."},
		{"code", "Update your `resume` before applying anywhere.", "Update your resume before applying anywhere."},
		{"italics", "This is *your* journey and nobody else's.", "This is your journey and nobody else's."},
		{"bullet after colon", "Here is the plan: • Update your resume", "Here is the plan:\n\n- Update your resume"},
		{"leading bullet", "• Update resume today and breathe", "- Update resume today and breathe"},
		{"excess newlines", "First insight here.\n\n\n\nSecond insight here.", "First insight here.\n\nSecond insight here."},
		{"runs of spaces", "Take   a    breath before deciding.", "Take a breath before deciding."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanReply(tt.in))
		})
	}
}

func TestCleanReplyFallsBackWhenEmpty(t *testing.T) {
	assert.Equal(t, emptyReplyFallback, CleanReply(""))
	assert.Equal(t, emptyReplyFallback, CleanReply("** **"))
}

func TestCleanReplyTruncatesAtParagraphBoundary(t *testing.T) {
	paragraph := strings.Repeat("Short insight here. ", 20)
	long := strings.TrimSpace(strings.Repeat(paragraph+"\n\n", 20))

	out := CleanReply(long)
	assert.LessOrEqual(t, len(out), maxReplyLength+len("\n\n")+len(truncationNotice))
	assert.True(t, strings.HasSuffix(out, truncationNotice))
}

func TestCleanReplyTruncationKeepsValidUTF8(t *testing.T) {
	// One ASCII byte up front puts every two-byte rune at an odd offset,
	// so the cap lands mid-rune.
	long := "a" + strings.Repeat("é", maxReplyLength)

	out := CleanReply(long)
	assert.True(t, utf8.ValidString(out))
	assert.True(t, strings.HasSuffix(out, truncationNotice))
}

func TestCleanReplyLeavesShortRepliesAlone(t *testing.T) {
	reply := "That sounds heavy.\n\nWhat would a good Monday look like for you?"
	assert.Equal(t, reply, CleanReply(reply))
}

package escapeplan

import (
	"fmt"

	"github.com/charlie2bored/shftrr/internal/types"
)

// Static content of the deterministic plan. Builders return fresh values
// on every call so one plan's consumers cannot mutate another's.

func fallbackMotivation() types.Motivation {
	return types.Motivation{
		CurrentDrive:   "You're taking the first brave step toward a career that excites you again!",
		Inspiration:    "Thousands of professionals just like you have successfully transitioned to more fulfilling careers. You have the skills, experience, and determination to join them.",
		Accountability: "Remember why you started: for more purpose, better work-life balance, and renewed passion for your work.",
	}
}

func fallbackAlternativePaths() []types.CareerPath {
	return []types.CareerPath{
		{
			Title:           "Project Manager",
			Description:     "Coordinate teams and manage project lifecycles",
			SalaryRange:     "$80,000 - $130,000",
			SkillsRequired:  []string{"Organization", "Leadership", "Communication"},
			TimeToEntry:     "3-6 months",
			GrowthPotential: "High",
			FitScore:        75,
		},
		{
			Title:           "Business Analyst",
			Description:     "Analyze business needs and improve processes",
			SalaryRange:     "$70,000 - $110,000",
			SkillsRequired:  []string{"Data Analysis", "Problem Solving", "Communication"},
			TimeToEntry:     "3-6 months",
			GrowthPotential: "Medium",
			FitScore:        70,
		},
		{
			Title:           "Technical Writer",
			Description:     "Create documentation and training materials",
			SalaryRange:     "$65,000 - $100,000",
			SkillsRequired:  []string{"Writing", "Technical Knowledge", "Communication"},
			TimeToEntry:     "1-3 months",
			GrowthPotential: "Medium",
			FitScore:        65,
		},
		{
			Title:           "Customer Success Manager",
			Description:     "Support customers and drive retention",
			SalaryRange:     "$60,000 - $95,000",
			SkillsRequired:  []string{"Communication", "Problem Solving", "Empathy"},
			TimeToEntry:     "1-3 months",
			GrowthPotential: "High",
			FitScore:        80,
		},
		{
			Title:           "Operations Coordinator",
			Description:     "Streamline business operations and processes",
			SalaryRange:     "$55,000 - $85,000",
			SkillsRequired:  []string{"Organization", "Process Improvement", "Communication"},
			TimeToEntry:     "1-3 months",
			GrowthPotential: "Medium",
			FitScore:        75,
		},
	}
}

func fallbackSkillsNeeded() []string {
	return []string{
		"Industry-specific technical skills",
		"Networking and relationship building",
		"Updated resume and LinkedIn optimization",
		"Interview preparation and salary negotiation",
		"Industry certification or coursework",
	}
}

func fallbackCertifications() []types.CertificationRecommendation {
	return []types.CertificationRecommendation{
		{
			Name:      "Google Career Certificates",
			Provider:  "Google",
			Cost:      "$49/month",
			Duration:  "3-6 months",
			Value:     "High demand, practical skills",
			Relevance: 90,
		},
		{
			Name:      "Project Management Professional (PMP)",
			Provider:  "PMI",
			Cost:      "$555",
			Duration:  "3 months study",
			Value:     "Industry standard certification",
			Relevance: 85,
		},
		{
			Name:      "Certified Scrum Master (CSM)",
			Provider:  "Scrum Alliance",
			Cost:      "$1,000+",
			Duration:  "2 days training",
			Value:     "Agile project management",
			Relevance: 80,
		},
	}
}

func fallbackCelebrationPoints() []types.CelebrationPoint {
	return []types.CelebrationPoint{
		{
			Trigger: "Complete your first networking message",
			Message: "🎉 You just took action toward your dream career! That's huge!",
			Reward:  "Treat yourself to your favorite coffee or snack",
		},
		{
			Trigger: "Build 3 months emergency savings",
			Message: "💰 Financial foundation secured! You're unstoppable now!",
			Reward:  "Plan a small celebration dinner with loved ones",
		},
		{
			Trigger: "Land first freelance project",
			Message: "🚀 You're officially building your new career! This is real!",
			Reward:  "Buy something that represents your new career path",
		},
	}
}

func fallbackDailyMotivation() []string {
	return []string{
		"What's one thing you're grateful for in your current role that you want to carry forward?",
		"Who in your network could help you with your career transition?",
		"What's one skill you're excited to develop?",
		"How will your life be different in 6 months if you take action today?",
		"What's the bravest career move you've made so far?",
	}
}

func fallbackPhase1(monthlyBurn float64) types.RoadmapPhase {
	return types.RoadmapPhase{
		Title:        "🌟 Awakening & Foundation Building",
		Duration:     "6 months",
		Introduction: "Welcome to your career transformation journey! You're not alone in feeling trapped - millions have walked this path before you. Today marks the beginning of your exciting transition to a more fulfilling career.",
		Goals: []string{
			"Complete comprehensive self-assessment and identify your core motivations",
			"Build emergency savings to 6 months of expenses for peace of mind",
			"Identify your transferable skills and rediscover your professional passions",
		},
		Actions: []types.RoadmapAction{
			{
				Description: "Create a Career Transition Journal",
				SpecificSteps: []string{
					"Download a free journal app (Daylio, Reflectly, or Notion)",
					`Set aside 10 minutes daily to write: "What energized me today? What drained me?"`,
					"At the end of each week, identify patterns in your energy levels",
				},
				TimeEstimate: "10 minutes daily",
				Tools:        []string{"Journal app", "Calendar reminders"},
			},
			{
				Description: "Build Your Emergency Fund",
				SpecificSteps: []string{
					fmt.Sprintf("Calculate your target: $%s (6 months × $%s)", formatUSD(monthlyBurn*6), formatUSD(monthlyBurn)),
					"Set up automatic transfers from checking to savings account",
					"Cut one non-essential expense (subscription, eating out, etc.)",
					"Look for side gigs on Upwork, Fiverr, or TaskRabbit",
				},
				TimeEstimate: "15 minutes setup + weekly check-ins",
				Tools:        []string{"Banking app", "Budget tracking app (Mint, YNAB)"},
			},
			{
				Description: "Skill Discovery & Documentation",
				SpecificSteps: []string{
					"List all jobs you've ever had with key responsibilities",
					`For each role, write: "What did I love? What did I hate? What skills did I use?"`,
					"Use LinkedIn Skills assessment or take free skill quizzes online",
					"Research salary ranges for your skills on Glassdoor or Levels.fyi",
				},
				TimeEstimate: "2-3 hours total",
				Tools:        []string{"LinkedIn", "Glassdoor", "Skills assessment websites"},
			},
		},
		Milestones: []types.RoadmapMilestone{
			{
				Description: "Complete Career Journal for 30 days",
				Celebration: "🎉 You now know yourself better than 90% of job seekers!",
				Measurable:  "30 journal entries completed",
			},
			{
				Description: "Achieve 3 months emergency savings",
				Celebration: "💪 You've built financial security - huge accomplishment!",
				Measurable:  fmt.Sprintf("Savings balance reaches $%s", formatUSD(monthlyBurn*3)),
			},
			{
				Description: "Identify 3-5 potential career paths",
				Celebration: "🚀 Multiple paths ahead - the future looks bright!",
				Measurable:  "Documented 3+ career options with research",
			},
		},
		Risks: []string{
			"Unexpected financial emergencies",
			"Job loss during transition planning",
			"Underestimating skill transferability",
		},
		CourageBoosts: []types.CourageBoost{
			{
				Fear:        "Unexpected financial emergencies",
				Affirmation: "You're building resilience, not avoiding reality. Having savings actually attracts more opportunities!",
				Action:      `Create a "worst-case scenario" plan and see how survivable it really is`,
			},
			{
				Fear:        "Underestimating skill transferability",
				Affirmation: "Your experience is more valuable than you realize. Every role has taught you something transferable.",
				Action:      `Find 3 people in your target industry and ask: "What skills from my background would transfer well?"`,
			},
		},
		Contingencies: []string{
			"Have part-time freelance work ready (create profiles on Upwork, Fiverr)",
			"Maintain current employment stability while building your foundation",
			"Consult with career counselor if feeling overwhelmed (free options available)",
		},
		InteractiveElements: []types.InteractiveElement{
			{
				Type:      "progress_bar",
				Title:     "Foundation Building Progress",
				Content:   "Track your emergency fund growth and journal completion",
				Frequency: "weekly",
			},
			{
				Type:      "reflection_question",
				Title:     "Weekly Reflection",
				Content:   "What surprised you most about your skills this week?",
				Frequency: "weekly",
			},
		},
		WeeklyCheckIns: []string{
			"What's one thing you learned about yourself this week?",
			"How close are you to your emergency fund goal?",
			"Which career path excites you most right now?",
			"What's one action you can take before next check-in?",
		},
	}
}

func fallbackPhase2() types.RoadmapPhase {
	return types.RoadmapPhase{
		Title:        "🚀 Skill Building & Market Entry",
		Duration:     "1 year",
		Introduction: "Now that you have a foundation, it's time to dive deep into building the skills and experience that will make you irresistible to employers in your target field. This phase is about transformation - turning your potential into proven capability.",
		Goals: []string{
			"Develop necessary skills for target careers",
			"Gain practical experience in new field",
			"Establish professional network in target industry",
		},
		Actions: []types.RoadmapAction{
			{
				Description: "Build Technical Skills",
				SpecificSteps: []string{
					"Identify 2-3 key skills needed for your target career",
					"Enroll in online courses (Coursera, Udemy, LinkedIn Learning)",
					"Practice skills through personal projects or coding challenges",
					"Join relevant communities (Reddit, Discord, Slack groups)",
				},
				TimeEstimate: "10-15 hours/week",
				Tools:        []string{"Coursera", "Udemy", "GitHub", "LeetCode"},
			},
			{
				Description: "Gain Real-World Experience",
				SpecificSteps: []string{
					"Create a portfolio showcasing your skills and projects",
					"Offer freelance services on Upwork or Fiverr",
					"Volunteer for projects in your target industry",
					"Network with professionals through LinkedIn and industry events",
				},
				TimeEstimate: "5-10 hours/week",
				Tools:        []string{"Upwork", "LinkedIn", "Portfolio website", "GitHub"},
			},
			{
				Description: "Build Your Professional Network",
				SpecificSteps: []string{
					"Join 3-5 LinkedIn groups related to your target career",
					"Attend virtual meetups and webinars weekly",
					"Send 2-3 personalized connection requests per week",
					"Schedule informational interviews with people in your target field",
				},
				TimeEstimate: "3-5 hours/week",
				Tools:        []string{"LinkedIn", "Meetup.com", "Eventbrite", "Zoom"},
			},
			{
				Description: "Optimize Your Professional Brand",
				SpecificSteps: []string{
					"Update resume with quantifiable achievements",
					"Refresh LinkedIn profile with professional photo and summary",
					"Start a professional blog or share insights on LinkedIn",
					"Get endorsements for your key skills from colleagues",
				},
				TimeEstimate: "2-4 hours total",
				Tools:        []string{"LinkedIn", "Resume templates", "Canva", "Medium"},
			},
		},
		Milestones: []types.RoadmapMilestone{
			{
				Description: "Complete first certification or course",
				Celebration: "🎓 You're officially upskilling! This certification opens new doors!",
				Measurable:  "Certificate earned and added to LinkedIn",
			},
			{
				Description: "Secure first paid freelance project",
				Celebration: "💼 You're now a working professional in your new field!",
				Measurable:  "First freelance payment received",
			},
			{
				Description: "Build network of 25+ professional contacts",
				Celebration: "🤝 Your network is growing - opportunities will follow!",
				Measurable:  "25+ connections in target industry on LinkedIn",
			},
		},
		Risks: []string{
			"Skills gap proves larger than expected",
			"Difficulty breaking into new industry",
			"Financial strain from education costs",
		},
		CourageBoosts: []types.CourageBoost{
			{
				Fear:        "Skills gap proves larger than expected",
				Affirmation: "Every expert was once a beginner. Your dedication and fresh perspective are your superpowers.",
				Action:      "Identify just ONE skill to focus on this month. Master it completely before moving to the next.",
			},
			{
				Fear:        "Difficulty breaking into new industry",
				Affirmation: "Industries need fresh talent and diverse perspectives. Your unique background is your competitive advantage.",
				Action:      `Research "transferable skills from [your current field] to [target field]" and highlight these in your networking conversations.`,
			},
		},
		Contingencies: []string{
			"Start with entry-level positions in new field",
			"Leverage existing network for opportunities",
			"Consider hybrid career path combining old and new skills",
		},
		InteractiveElements: []types.InteractiveElement{
			{
				Type:      "progress_bar",
				Title:     "Skill Development Tracker",
				Content:   "Track certifications completed and projects finished",
				Frequency: "monthly",
			},
			{
				Type:      "checklist",
				Title:     "Networking Success Checklist",
				Content:   "Mark off each networking activity as you complete it",
				Frequency: "weekly",
			},
		},
		WeeklyCheckIns: []string{
			"What new skill did you practice this week?",
			"How many new professional connections did you make?",
			"What's one thing you learned about your target industry?",
			"Did you receive any positive feedback on your work?",
			"What's your biggest win from this week?",
		},
	}
}

func fallbackPhase3() types.RoadmapPhase {
	return types.RoadmapPhase{
		Title:        "🎯 Full Transition & Career Growth",
		Duration:     "2 years",
		Introduction: "Congratulations! You've built the foundation and developed the skills. Now it's time to make the leap into your new career and build the professional life you've always wanted. This is where dreams become reality.",
		Goals: []string{
			"Secure full-time position in target career",
			"Achieve salary growth and job satisfaction",
			"Establish work-life balance",
		},
		Actions: []types.RoadmapAction{
			{
				Description: "Launch Your Job Search Campaign",
				SpecificSteps: []string{
					"Create a targeted resume for each job application",
					"Apply to 5-10 positions per week in your target industry",
					"Customize cover letters for each application",
					"Track all applications in a spreadsheet",
				},
				TimeEstimate: "10-15 hours/week",
				Tools:        []string{"LinkedIn", "Indeed", "Company career pages", "Resume tracking spreadsheet"},
			},
			{
				Description: "Master Interview and Negotiation Skills",
				SpecificSteps: []string{
					"Practice common interview questions with a friend",
					"Research salary ranges for your target role and location",
					"Prepare questions to ask interviewers",
					"Role-play salary negotiations",
				},
				TimeEstimate: "3-5 hours/week",
				Tools:        []string{"Glassdoor", "Levels.fyi", "Interview practice apps", "Negotiation scripts"},
			},
			{
				Description: "Build Relationships in Your New Role",
				SpecificSteps: []string{
					"Schedule coffee chats with new colleagues weekly",
					"Find a mentor in your new organization",
					"Join company social events and committees",
					"Seek feedback regularly from managers and peers",
				},
				TimeEstimate: "2-4 hours/week",
				Tools:        []string{"Calendar for networking", "Company directory", "Slack/Teams", "Feedback templates"},
			},
			{
				Description: "Continue Learning and Growing",
				SpecificSteps: []string{
					"Set quarterly learning goals with your manager",
					"Take on stretch assignments and new responsibilities",
					"Attend industry conferences and webinars",
					"Pursue advanced certifications in your field",
				},
				TimeEstimate: "5-8 hours/week",
				Tools:        []string{"Learning management systems", "Conference platforms", "Professional associations", "Online learning platforms"},
			},
		},
		Milestones: []types.RoadmapMilestone{
			{
				Description: "Accept your first full-time offer in target career",
				Celebration: "🎊 You did it! Welcome to your new career chapter!",
				Measurable:  "Signed offer letter in target industry role",
			},
			{
				Description: "Achieve competitive salary within 6 months",
				Celebration: "💰 Your expertise is valued - financial growth unlocked!",
				Measurable:  "Salary reaches 80%+ of previous highest earnings",
			},
			{
				Description: "Receive outstanding performance review",
				Celebration: "🌟 You're excelling in your new career - so proud of you!",
				Measurable:  `Performance rating of "exceeds expectations" or equivalent`,
			},
		},
		Risks: []string{
			"Job market challenges",
			"Salary regression during transition",
			"Cultural adjustment difficulties",
		},
		CourageBoosts: []types.CourageBoost{
			{
				Fear:        "Job market challenges",
				Affirmation: "The right opportunity is out there, and it's looking for someone exactly like you.",
				Action:      "Treat job hunting like a part-time job: 20-30 hours/week of dedicated, focused effort.",
			},
			{
				Fear:        "Salary regression during transition",
				Affirmation: "Your total compensation includes growth potential, work satisfaction, and long-term earning power.",
				Action:      `Calculate your "career earnings potential" over 5 years, not just the starting salary.`,
			},
			{
				Fear:        "Cultural adjustment difficulties",
				Affirmation: "You've successfully navigated multiple life changes already. This is just another chapter.",
				Action:      `Find one "cultural translator" - someone who can help you understand unwritten rules and norms.`,
			},
		},
		Contingencies: []string{
			"Accept bridge positions with growth potential",
			"Negotiate for higher starting salary",
			"Seek mentorship and support systems",
		},
		InteractiveElements: []types.InteractiveElement{
			{
				Type:      "progress_bar",
				Title:     "Career Transition Progress",
				Content:   "Track applications sent, interviews completed, and offers received",
				Frequency: "weekly",
			},
			{
				Type:      "reflection_question",
				Title:     "Career Growth Reflection",
				Content:   "How has your perspective on work changed since starting this journey?",
				Frequency: "monthly",
			},
		},
		WeeklyCheckIns: []string{
			"How many applications did you submit this week?",
			"Did you have any interviews or networking conversations?",
			"What's one thing you're learning about your new industry?",
			"How is your work-life balance in your new role?",
			"What are you most proud of accomplishing this week?",
		},
	}
}

package portfolio

// sections is the aggregated static dataset, keyed by the section names
// accepted on the data API.
var sections = map[string]interface{}{
	"skills": []string{
		"Rust & Reverse Engineering",
		"AI Agent Architecture",
		"Prompt Engineering",
		"Security Research",
		"Python & Data Science",
		"Generative Visual Prototyping",
	},
	"projects": []Project{
		{
			Title:       "ShadowMap",
			Description: "A Rust-powered open-source framework for subdomain enumeration, vulnerability detection, and attack surface mapping built with vibe coding.",
			Tag:         "Open Source",
			Link:        "https://github.com/mdabir1203/ShadowMap",
		},
		{
			Title:       "Bangla Fact Checker",
			Description: "A Bengali-first fact-checking assistant that cross-checks text or images with the Perplexity API to deliver sourced, culturally aware answers in seconds.",
			Tag:         "AI Fact-Checking",
			Link:        "https://github.com/mdabir1203/Bangla-Fact-Checker",
		},
		{
			Title:       "Prompt Panda Bangla",
			Description: "Showcasing prompt engineering in Bangla, making AI accessible to Bengali speakers with a lovable, friendly interface.",
			Tag:         "Vibe Coding",
			Link:        "https://prompt-panda-bangla.lovable.app/",
		},
	},
	"services": []string{
		"Security-first AI agent development",
		"Rust systems rebuilds and performance audits",
		"Generative AI workshops and mentoring",
	},
	"experiences": []Experience{
		{
			Role:    "Education Mentor",
			Company: "Quantum School Bangladesh",
			Period:  "May 2025 - Aug 2025",
			Details: []string{
				"Showcased how to leverage Generative AI to prototype quantum circuits",
				"Guided contributions to open-source projects on GitHub",
			},
		},
		{
			Role:    "Co-Founder",
			Company: "Deep Blue Digital",
			Period:  "Sep 2024 - Aug 2025",
			Details: []string{
				"Architected a high-performance WordPress website",
				"Implemented AI-driven growth marketing using Midjourney and Zapier",
			},
		},
		{
			Role:    "Information Technology Support Engineer",
			Company: "HNM IT Solutions",
			Period:  "Oct 2023 - Jan 2024",
			Details: []string{
				"Updated routers to enhance security and compatibility",
				"Diagnosed networks by running tests and verifying configurations",
			},
		},
	},
	"journey": []JourneyStep{
		{Year: "2025", Title: "Rust Evangelist & Security Specialist", Description: "Reverse engineering Rust frameworks to understand how to build high performant systems and mapping out tools like ShadowMap in Rust and agents."},
		{Year: "2024", Title: "AI Alchemist & Vibe Coder", Description: "Turning data into gold with advanced AI systems, prompt engineering, and building lovable, secure websites."},
		{Year: "2023", Title: "Mindset Mentor & Community Builder", Description: "Growing a technical blog and mentoring to build a community skillset around agents."},
		{Year: "2022", Title: "Startup Warrior", Description: "Launching Deep Blue Digital and VisaNav, learning the hard lessons of entrepreneurship."},
		{Year: "2021", Title: "Python Wizard", Description: "Diving deep into data science and machine learning, building intelligent systems that solve real problems."},
	},
	"awards": []Award{
		{Title: "Redis Side Quest Hackathon Winner", Issuer: "Redis", Description: "Built RedAGPT, an agentic network security assistant, to win the Redis Side Quest hackathon challenge."},
		{Title: "Wolfsburg Homie", Issuer: "42 Wolfsburg", Description: "Awarded for embracing the 42 Wolfsburg community spirit, complete with legendary late-night coding sessions."},
		{Title: "Certificate of Achievement", Issuer: "Local Committee Hannover, AIESEC", Description: "Recognized for leading the iGTA program with the highest number of completed actions."},
	},
	"trust": []TrustPillar{
		{
			Title:       "Responsible AI Craftsmanship",
			Description: "Every feature is reviewed against ethical guidelines before it ships so experiments never come at the expense of people.",
			Commitments: []string{
				"Scenario reviews map intended and unintended use cases",
				"Bias and fairness checkpoints are embedded into QA pipelines",
				"Red-team drills to stress-test models against abuse patterns",
			},
		},
		{
			Title:       "Security by Architecture",
			Description: "Security controls are wired into the architecture from the first design doc, not patched in after launch.",
			Commitments: []string{
				"Zero-trust defaults with least-privilege automation",
				"End-to-end encryption and audit trails for every integration",
				"Continuous dependency health monitoring with rapid patch SLAs",
			},
		},
	},
	"assistantActs": assistantActs(),
}

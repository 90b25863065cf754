package portfolio

const (
	DefaultButtonText  = "Chat with Clarence"
	DefaultPlaceholder = "Type a message..."
	DefaultFallback    = "That's interesting! I'm always eager to learn and discuss new topics. Feel free to ask me about my projects, skills, or experiences in tech. You can also check out my GitHub repositories for more details!"
)

// DefaultRules are the auto-responses seeded into a fresh document.
func DefaultRules() []AutoResponseRule {
	return []AutoResponseRule{
		{
			Triggers: []string{"hello", "hi", "hey"},
			Response: "Hello! 👋 Thanks for visiting my portfolio. How can I help you today?",
		},
		{
			Triggers: []string{"about", "who are you", "tell me about yourself"},
			Response: "I'm Clarence Sadiaza, an Information Technology student passionate about full-stack development. I love creating clean, intuitive digital experiences with modern technologies like React, Node.js, and cloud platforms.",
		},
		{
			Triggers: []string{"projects", "work", "portfolio"},
			Response: "I've worked on several projects including an E-Commerce Platform, Task Management App, Weather Dashboard, and this Portfolio Website. You can click on any project card to view the source code on GitHub!",
		},
		{
			Triggers: []string{"skills", "technologies", "tech stack"},
			Response: "My tech stack includes React, JavaScript, TypeScript, Node.js, MongoDB, PostgreSQL, AWS, and many more. I'm always learning new technologies to stay current with industry trends.",
		},
		{
			Triggers: []string{"contact", "email", "reach out"},
			Response: "You can reach me at sadiazaclarence@gmail.com or connect with me on LinkedIn and GitHub. I'm always interested in new opportunities and exciting projects!",
		},
		{
			Triggers: []string{"experience", "background", "education"},
			Response: "I'm currently pursuing my Bachelor's in Information Technology at Dr. Yanga's Colleges. I've been self-teaching web development since 2022 and have built various personal projects to practice my skills.",
		},
	}
}

// DefaultContent is written for an owner on their first read.
func DefaultContent() Content {
	c := Content{
		Hero: Hero{
			Name:     "Clarence Sadiaza",
			Location: "Bulacan, Central Luzon, Philippines",
			Title:    "Information Technology Student | Aspiring Full-Stack Developer",
			Email:    "sadiazaclarence@gmail.com",
		},
		About: About{
			Paragraphs: []string{
				"I'm an Information Technology student with a passion for creating clean, intuitive digital experiences. Currently pursuing my degree while building personal projects and learning modern web development technologies.",
				"My focus is on full-stack development with modern technologies like React, Node.js, and cloud platforms. I enjoy turning ideas into functional applications and continuously learning new technologies to stay current with industry trends.",
				"Beyond academics, I'm passionate about contributing to open-source projects and building a strong foundation in software engineering principles. I'm always eager to learn and grow in the tech community.",
			},
		},
		Experience: []Experience{
			{
				Year:        "2023-present",
				Title:       "Information Technology Student",
				Company:     "Dr. Yanga's Colleges",
				Description: "Currently pursuing Bachelor of Science in Information Technology with focus on software development, database management, and IT systems. Maintaining high academic performance while building personal projects.",
			},
			{
				Year:        "2022-2023",
				Title:       "Self-Taught Developer",
				Company:     "Online Learning",
				Description: "Completed multiple online courses in web development including React, Node.js, and modern JavaScript. Built various personal projects to practice and showcase skills.",
			},
			{
				Year:        "2022",
				Title:       "High School Graduate",
				Company:     "Japan–Philippines Institute of Technology",
				Description: "Graduated in Technical-Vocational Track(ICT), and developed interest in programming through basic web development projects.",
			},
		},
		Skills: Skills{
			Frontend: []string{"JavaScript", "TypeScript", "React", "Tailwind CSS", "HTML5", "CSS3", "Sass", "Webpack", "Vite"},
			Backend:  []string{"Node.js", "Express", "Python", "MySQL", "MongoDB", "PostgreSQL", "AWS", "Supabase"},
		},
		Projects: []Project{
			{
				Id:          1,
				Title:       "E-Commerce Platform",
				Description: "A fully responsive e-commerce website with product filtering, cart functionality, and secure checkout process.",
				Tags:        []string{"React", "Node.js", "MongoDB", "PayMongo"},
				Year:        "2024",
				Url:         "https://github.com/kurarensu16/ecommerce-platform",
			},
			{
				Id:          2,
				Title:       "Task Management App",
				Description: "A productivity application for managing tasks with drag-and-drop functionality and real-time collaboration.",
				Tags:        []string{"React", "Firebase", "Material UI", "Redux"},
				Year:        "2023",
				Url:         "https://github.com/kurarensu16/task-management-app",
			},
			{
				Id:          3,
				Title:       "Weather Dashboard",
				Description: "Real-time weather application with 5-day forecast, location search, and interactive maps integration.",
				Tags:        []string{"JavaScript", "REST API", "CSS3", "Leaflet"},
				Year:        "2023",
				Url:         "https://github.com/kurarensu16/weather-dashboard",
			},
			{
				Id:          4,
				Title:       "Portfolio Website",
				Description: "A minimalist portfolio website showcasing projects and skills with smooth animations and responsive design.",
				Tags:        []string{"React", "Vite", "Tailwind CSS", "Framer Motion"},
				Year:        "2024",
				Url:         "https://github.com/kurarensu16/portfolio-website",
			},
		},
		Contact: Contact{
			Email:        "sadiazaclarence@gmail.com",
			Location:     "Bulacan, Central Luzon, Philippines",
			Availability: "Available for freelance work",
			Social: Social{
				Github:   "https://github.com/kurarensu16",
				Linkedin: "https://www.linkedin.com/in/clarence-sadiaza-16770b387/",
				Facebook: "https://www.facebook.com/profile.php?id=61580149517159",
			},
		},
		Chat: ChatSettings{
			Enabled:          true,
			ButtonText:       DefaultButtonText,
			Placeholder:      DefaultPlaceholder,
			FallbackResponse: DefaultFallback,
			AutoResponses:    DefaultRules(),
		},
	}
	c.Normalize()
	return c
}

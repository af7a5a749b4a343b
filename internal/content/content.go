// Package content holds the static portfolio content: profile, skills,
// experience, and education. It is fixture data, not a data store.
package content

// Profile is the site owner's bio shown on the home and about pages.
type Profile struct {
	Name     string
	Title    string
	Location string
	Bio      string
	GitHub   string
	Email    string
}

// SkillGroup is a named group of technologies.
type SkillGroup struct {
	Category string
	Items    []string
}

// TimelineItem is one entry of the experience or education timeline.
type TimelineItem struct {
	Period      string
	Title       string
	Place       string
	Description string
}

// Owner returns the site owner's profile.
func Owner() Profile {
	return Profile{
		Name:     "Gustavo Pereira da Silva",
		Title:    "Full Stack Developer",
		Location: "Brazil",
		Bio: "With several years of experience in web and mobile development, " +
			"I enjoy creating high-quality applications with clean, efficient code. " +
			"My goal is to deliver exceptional digital experiences while constantly " +
			"learning to enhance my skills and provide better solutions.",
		GitHub: "gustavosilvabr",
		Email:  "contact@gustavosilva.dev",
	}
}

// Skills returns the technical skill groups shown on the home page.
func Skills() []SkillGroup {
	return []SkillGroup{
		{Category: "Frontend", Items: []string{"JavaScript", "TypeScript", "React", "HTML5", "CSS3", "Tailwind CSS", "Redux"}},
		{Category: "Backend", Items: []string{"Node.js", "Express", "PostgreSQL", "MongoDB", "REST API", "GraphQL"}},
		{Category: "Mobile", Items: []string{"React Native", "Expo", "Android", "iOS"}},
		{Category: "Tools", Items: []string{"Git", "GitHub", "VS Code", "Figma", "Webpack", "Docker"}},
	}
}

// Experience returns the work history timeline, most recent first.
func Experience() []TimelineItem {
	return []TimelineItem{
		{
			Period: "2021 - Present",
			Title:  "Full Stack Developer",
			Place:  "Tech Innovation Labs",
			Description: "Developing modern web applications using React, Node.js, and PostgreSQL. " +
				"Implementing responsive designs and RESTful APIs for client projects.",
		},
		{
			Period: "2019 - 2021",
			Title:  "Frontend Developer",
			Place:  "Digital Solutions Agency",
			Description: "Created responsive user interfaces using React and styled-components. " +
				"Collaborated with UX designers to implement pixel-perfect designs.",
		},
		{
			Period: "2018 - 2019",
			Title:  "Web Developer Intern",
			Place:  "Web Startup Inc.",
			Description: "Assisted in the development of web applications, focusing on HTML, CSS, " +
				"and JavaScript fundamentals.",
		},
	}
}

// Education returns the education timeline, most recent first.
func Education() []TimelineItem {
	return []TimelineItem{
		{
			Period: "2020 - 2021",
			Title:  "Full Stack Web Development Bootcamp",
			Place:  "Coding Academy",
			Description: "Intensive training in modern web development technologies including " +
				"JavaScript, React, Node.js, and databases.",
		},
		{
			Period: "2016 - 2020",
			Title:  "Bachelor of Science in Computer Science",
			Place:  "Tech University",
			Description: "Studied computer programming, algorithms, data structures, and software " +
				"engineering principles.",
		},
	}
}

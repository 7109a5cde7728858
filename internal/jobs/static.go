package jobs

import "time"

// Static returns the built-in demo dataset used when no upstream API key is
// configured or the upstream call fails. Posted dates are relative to now so
// date filters keep behaving sensibly.
func Static(now time.Time) *List {
	day := 24 * time.Hour
	return NewList(
		Job{
			ID:          "job-1",
			Title:       "Senior React Developer",
			Company:     "TechCorp Inc.",
			Location:    "San Francisco, CA",
			WorkMode:    WorkModeRemote,
			JobType:     JobTypeFullTime,
			Description: "We are looking for a Senior React Developer with 5+ years of experience. You will be working on our flagship product using React, TypeScript, Redux, and Node.js. Experience with AWS and CI/CD pipelines is a plus.",
			Skills:      []string{"React", "TypeScript", "Redux", "Node.js", "AWS"},
			Salary:      "$150,000 - $180,000",
			PostedDate:  now.Add(-2 * day),
			ApplyURL:    "https://www.linkedin.com/jobs/search/?keywords=Senior%20React%20Developer",
		},
		Job{
			ID:          "job-2",
			Title:       "Full Stack Engineer",
			Company:     "StartupXYZ",
			Location:    "New York, NY",
			WorkMode:    WorkModeHybrid,
			JobType:     JobTypeFullTime,
			Description: "Join our fast-growing startup as a Full Stack Engineer. We use Python, Django, React, and PostgreSQL. You'll work on building new features and scaling our platform. Experience with Docker and Kubernetes preferred.",
			Skills:      []string{"Python", "Django", "React", "PostgreSQL", "Docker"},
			Salary:      "$120,000 - $150,000",
			PostedDate:  now.Add(-5 * day),
			ApplyURL:    "https://www.indeed.com/jobs?q=Full+Stack+Engineer",
		},
		Job{
			ID:          "job-3",
			Title:       "Frontend Developer",
			Company:     "DesignStudio",
			Location:    "Austin, TX",
			WorkMode:    WorkModeOnSite,
			JobType:     JobTypeFullTime,
			Description: "Creative agency seeking a Frontend Developer with strong CSS skills. Must have experience with Vue.js or React, animations, and responsive design. Figma experience required.",
			Skills:      []string{"React", "Vue.js", "CSS", "Figma", "JavaScript"},
			Salary:      "$90,000 - $120,000",
			PostedDate:  now.Add(-1 * day),
			ApplyURL:    "https://www.glassdoor.com/Job/jobs.htm?sc.keyword=Frontend+Developer",
		},
		Job{
			ID:          "job-4",
			Title:       "Backend Developer - Node.js",
			Company:     "CloudServices Co",
			Location:    "Seattle, WA",
			WorkMode:    WorkModeRemote,
			JobType:     JobTypeFullTime,
			Description: "Looking for a Backend Developer proficient in Node.js and microservices architecture. Experience with MongoDB, Redis, and message queues (RabbitMQ/Kafka) required. AWS experience is a must.",
			Skills:      []string{"Node.js", "MongoDB", "Redis", "AWS", "Microservices"},
			Salary:      "$130,000 - $160,000",
			PostedDate:  now.Add(-3 * day),
			ApplyURL:    "https://www.linkedin.com/jobs/search/?keywords=Backend%20Developer%20Node.js",
		},
		Job{
			ID:          "job-5",
			Title:       "Junior Python Developer",
			Company:     "DataTech Analytics",
			Location:    "Chicago, IL",
			WorkMode:    WorkModeHybrid,
			JobType:     JobTypeFullTime,
			Description: "Entry-level position for Python developers. Will work on data pipelines and automation scripts. Knowledge of pandas, numpy, and SQL is beneficial. Great opportunity to learn machine learning.",
			Skills:      []string{"Python", "SQL", "Pandas", "NumPy", "Git"},
			Salary:      "$70,000 - $90,000",
			PostedDate:  now.Add(-7 * day),
			ApplyURL:    "https://www.indeed.com/jobs?q=Junior+Python+Developer",
		},
		Job{
			ID:          "job-6",
			Title:       "DevOps Engineer",
			Company:     "InfraCloud",
			Location:    "Denver, CO",
			WorkMode:    WorkModeRemote,
			JobType:     JobTypeContract,
			Description: "DevOps Engineer needed for cloud infrastructure management. Must have strong experience with Terraform, Kubernetes, and CI/CD pipelines. AWS or GCP certification preferred.",
			Skills:      []string{"Kubernetes", "Terraform", "AWS", "Docker", "Jenkins"},
			Salary:      "$140,000 - $170,000",
			PostedDate:  now.Add(-4 * day),
			ApplyURL:    "https://www.dice.com/jobs?q=DevOps+Engineer",
		},
		Job{
			ID:          "job-7",
			Title:       "UX Designer",
			Company:     "ProductFirst",
			Location:    "Los Angeles, CA",
			WorkMode:    WorkModeHybrid,
			JobType:     JobTypeFullTime,
			Description: "UX Designer with strong Figma skills needed. Create user flows, wireframes, and prototypes. Experience with design systems and user research required. Work closely with developers.",
			Skills:      []string{"Figma", "UI/UX", "Prototyping", "User Research", "Design Systems"},
			Salary:      "$100,000 - $130,000",
			PostedDate:  now.Add(-2 * day),
			ApplyURL:    "https://www.linkedin.com/jobs/search/?keywords=UX%20Designer",
		},
		Job{
			ID:          "job-8",
			Title:       "Machine Learning Engineer",
			Company:     "AI Innovations",
			Location:    "Boston, MA",
			WorkMode:    WorkModeRemote,
			JobType:     JobTypeFullTime,
			Description: "ML Engineer to develop and deploy machine learning models. Strong Python, TensorFlow/PyTorch experience required. Experience with NLP and computer vision is a plus.",
			Skills:      []string{"Python", "TensorFlow", "PyTorch", "Machine Learning", "NLP"},
			Salary:      "$160,000 - $200,000",
			PostedDate:  now.Add(-6 * day),
			ApplyURL:    "https://www.glassdoor.com/Job/jobs.htm?sc.keyword=Machine+Learning+Engineer",
		},
		Job{
			ID:          "job-9",
			Title:       "React Native Developer",
			Company:     "MobileFirst Apps",
			Location:    "Miami, FL",
			WorkMode:    WorkModeRemote,
			JobType:     JobTypeFullTime,
			Description: "Build cross-platform mobile apps using React Native. Experience with Redux, TypeScript, and native module development. iOS and Android publishing experience required.",
			Skills:      []string{"React Native", "TypeScript", "Redux", "iOS", "Android"},
			Salary:      "$110,000 - $140,000",
			PostedDate:  now.Add(-1 * day),
			ApplyURL:    "https://www.indeed.com/jobs?q=React+Native+Developer",
		},
		Job{
			ID:          "job-10",
			Title:       "Data Engineer",
			Company:     "BigData Corp",
			Location:    "Atlanta, GA",
			WorkMode:    WorkModeOnSite,
			JobType:     JobTypeFullTime,
			Description: "Data Engineer to build and maintain data pipelines. Experience with Spark, Airflow, and cloud data warehouses (Snowflake/BigQuery) required. SQL expertise is a must.",
			Skills:      []string{"Python", "Spark", "Airflow", "SQL", "Snowflake"},
			Salary:      "$125,000 - $155,000",
			PostedDate:  now.Add(-8 * day),
			ApplyURL:    "https://www.linkedin.com/jobs/search/?keywords=Data%20Engineer",
		},
		Job{
			ID:          "job-11",
			Title:       "Software Engineering Intern",
			Company:     "TechStart",
			Location:    "San Jose, CA",
			WorkMode:    WorkModeHybrid,
			JobType:     JobTypeInternship,
			Description: "Summer internship for CS students. Work on real projects with React and Node.js. Mentorship provided. Great learning opportunity for aspiring developers.",
			Skills:      []string{"JavaScript", "React", "Node.js", "Git", "Problem Solving"},
			Salary:      "$30/hour",
			PostedDate:  now.Add(-3 * day),
			ApplyURL:    "https://www.indeed.com/jobs?q=Software+Engineering+Intern",
		},
		Job{
			ID:          "job-12",
			Title:       "Senior Backend Developer - Java",
			Company:     "Enterprise Solutions",
			Location:    "Dallas, TX",
			WorkMode:    WorkModeOnSite,
			JobType:     JobTypeFullTime,
			Description: "Senior Java developer for enterprise applications. Experience with Spring Boot, microservices, and Oracle/PostgreSQL databases required. Leadership experience preferred.",
			Skills:      []string{"Java", "Spring Boot", "Microservices", "PostgreSQL", "Oracle"},
			Salary:      "$140,000 - $175,000",
			PostedDate:  now.Add(-10 * day),
			ApplyURL:    "https://www.dice.com/jobs?q=Senior+Backend+Developer+Java",
		},
		Job{
			ID:          "job-13",
			Title:       "Part-time Web Developer",
			Company:     "LocalBusiness Co",
			Location:    "Phoenix, AZ",
			WorkMode:    WorkModeRemote,
			JobType:     JobTypePartTime,
			Description: "Part-time web developer to maintain and update company websites. WordPress and basic HTML/CSS/JS skills needed. Flexible hours, 20 hours per week.",
			Skills:      []string{"WordPress", "HTML", "CSS", "JavaScript", "PHP"},
			Salary:      "$35/hour",
			PostedDate:  now.Add(-5 * day),
			ApplyURL:    "https://www.indeed.com/jobs?q=Part+Time+Web+Developer",
		},
		Job{
			ID:          "job-14",
			Title:       "Golang Developer",
			Company:     "HighPerformance Tech",
			Location:    "Portland, OR",
			WorkMode:    WorkModeRemote,
			JobType:     JobTypeFullTime,
			Description: "Backend developer specializing in Go. Build high-performance APIs and microservices. Experience with gRPC, Kubernetes, and distributed systems required.",
			Skills:      []string{"Go", "gRPC", "Kubernetes", "Docker", "PostgreSQL"},
			Salary:      "$135,000 - $165,000",
			PostedDate:  now.Add(-2 * day),
			ApplyURL:    "https://www.linkedin.com/jobs/search/?keywords=Golang%20Developer",
		},
		Job{
			ID:          "job-15",
			Title:       "Technical Lead - Frontend",
			Company:     "ScaleUp Inc",
			Location:    "Washington, DC",
			WorkMode:    WorkModeHybrid,
			JobType:     JobTypeFullTime,
			Description: "Technical Lead for frontend team. Lead a team of 5 developers building React applications. Architecture decisions, code reviews, and mentoring. 8+ years experience required.",
			Skills:      []string{"React", "TypeScript", "Leadership", "Architecture", "Mentoring"},
			Salary:      "$170,000 - $200,000",
			PostedDate:  now.Add(-1 * day),
			ApplyURL:    "https://www.glassdoor.com/Job/jobs.htm?sc.keyword=Technical+Lead+Frontend",
		},
	)
}

// Package content provides the site dataset, either built in or loaded from a file.
package content

import "bhajaj.dev/internal/models"

func ptr(s string) *string { return &s }

var defaultAbout = models.About{
	Intro: "I'm a Master's student in Computer Science at Binghamton University focused on AI for " +
		"healthcare, finance, generative systems, and large-scale data platforms. I thrive at the nexus of " +
		"research and product engineering, rapidly prototyping ideas, validating them with data, " +
		"and deploying them to the cloud with strong MLOps practices.",
	Skills: []models.SkillCategory{
		{
			Title:  "Programming Languages",
			Skills: []string{"Python", "SQL", "C++", "C", "Java", "JavaScript", "Golang", "R", "CUDA"},
			Icon:   models.IconCode,
		},
		{
			Title:  "ML & Data Science",
			Skills: []string{"PyTorch", "TensorFlow", "Scikit-learn", "NumPy", "Pandas", "CrewAI", "LangChain", "Hugging Face"},
			Icon:   models.IconZap,
		},
		{
			Title:  "Generative AI & Agents",
			Skills: []string{"Agentic AI", "RAG", "LLM Fine-tuning", "vLLM", "Gemini", "Llama", "Ollama", "Google AI Studio"},
			Icon:   models.IconSparkles,
		},
		{
			Title:  "Cloud & Platforms",
			Skills: []string{"AWS", "Azure", "GCP", "Kubernetes", "Docker", "Kafka", "MLflow", "Streamlit", "React", "FastAPI"},
			Icon:   models.IconCloud,
		},
		{
			Title:  "Data & Databases",
			Skills: []string{"Spark", "Hadoop", "MySQL", "PostgreSQL", "MongoDB", "Redshift", "PL/SQL", "BigQuery"},
			Icon:   models.IconDatabase,
		},
		{
			Title:  "DevOps & Tooling",
			Skills: []string{"Git", "Bash", "CI/CD", "Airflow", "EMR", "Docker Compose", "Grafana", "Linux"},
			Icon:   models.IconServer,
		},
	},
	Highlights: []models.Highlight{
		{
			Icon:        models.IconCode,
			Title:       "Agentic AI Systems",
			Description: "Designed multi-LLM ensembles with early-exit routing that double recall for drug discovery while trimming API cost by ~50%.",
		},
		{
			Icon:        models.IconSparkles,
			Title:       "Scientific ML Research",
			Description: "Fine-tuned foundation models for cancer diagnosis, engineered PCA+SVM pipelines, and uncovered statistically significant biomarkers.",
		},
		{
			Icon:        models.IconUsers,
			Title:       "Team Leadership",
			Description: "Led cross-functional pods at LTIMindtree and Binghamton University, mentoring teammates while shipping production analytics.",
		},
		{
			Icon:        models.IconZap,
			Title:       "Data Platforms",
			Description: "Scaled Spark jobs, monitoring, and streaming pipelines that push 8M+ events/day with automated reporting and observability.",
		},
	},
	Publications: []models.Publication{
		{
			Title: "ClinSegAI: Post-processing framework for histopathology segmentation and radiomics preservation - Computers in Biology and Medicine",
			Href:  "https://link.springer.com/chapter/10.1007/978-981-16-7657-4_71",
		},
		{
			Title: "Suspect Facial Image Generation using DCGAN - Springer",
			Href:  "https://link.springer.com/chapter/10.1007/978-981-16-7657-4_71",
		},
		{
			Title: "Comprehensive Study of Failed Machine-Learning Applications Using a Novel 3C Approach - Taylor & Francis",
			Href:  "https://www.taylorfrancis.com/chapters/edit/10.1201/9781003133681-25/comprehensive-study-failed-machine-learning-applications-using-novel-3c-approach-neel-patel-prem-bhajaj-pratik-panchal-tanmai-prabhune-pankaj-sonawane-ramchandra-mangrulkar",
		},
		{
			Title: "Virtual Chemistry Lab: Web-Based Simulation for Laboratory Experiments - IRJET",
			Href:  "https://www.irjet.net/archives/V7/i12/IRJET-V7I1284.pdf",
		},
	},
}

var defaultEducation = []models.EducationRecord{
	{
		Degree:   "Master of Science in Computer Science",
		School:   "Binghamton University – SUNY",
		Location: "Binghamton, NY",
		Duration: "Jan 2024 - May 2025",
		GPA:      ptr("3.92/4.00"),
		Coursework: []string{
			"Deep Learning",
			"Natural Language Processing",
			"Machine Learning",
			"Social Media Data Science Pipeline",
			"Statistics",
			"Advanced Data Structures & Algorithms",
		},
	},
	{
		Degree:   "Bachelor of Engineering in Computer Engineering",
		School:   "D. J. Sanghvi College of Engineering, University of Mumbai",
		Location: "Mumbai, India",
		Duration: "Aug 2018 - May 2021",
		GPA:      ptr("3.86/4.00"),
		Coursework: []string{
			"Algorithms & Data Structures",
			"Database Management Systems",
			"Operating Systems",
			"Computer Networks",
			"Cloud Computing",
			"Software Engineering",
		},
	},
}

var defaultProjects = []models.Project{
	{
		ID:           "voice-stock-trading-agent",
		Title:        "Voice-Driven Stock Trading Agent",
		Description:  "Real-time voice-driven agent that uses Gemini 2.5 Flash tool calling to handle stock price queries and simulated trades through a streaming Speech-to-Text -> LLM -> Text-to-Speech pipeline.",
		Technologies: []string{"LangChain", "LangGraph", "Gemini", "FastAPI", "Python"},
		GitHub:       ptr("https://github.com/prembhajaj/Voice-Driven-Stock-Trading-Agent"),
		Features: []string{
			"Built a voice-based agent that performs stock price lookups and executes simulated trades with ~3-second response time.",
			"Tuned prompts for voice-friendly responses, reducing average output length by 40% and removing non-verbal characters.",
			"Implemented streaming audio I/O to enable low-latency, conversational interactions.",
		},
	},
	{
		ID:           "survival-prognosis-assistant",
		Title:        "Survival Prognosis Assistant - TCGA Lung Cancer",
		Description:  "Agentic AI copilot where Gemini-powered tools analyze TCGA clinical, genomic, and imaging data to answer clinician prompts with actionable survival guidance.",
		Technologies: []string{"CrewAI", "LangChain", "Gemini APIs", "Agentic AI", "Python", "FastAPI"},
		GitHub:       ptr("https://github.com/prembhajaj/Survival-Prognosis-Assistant"),
		Features: []string{
			"Tool-calling workflow selects the right analytic path per prompt to reach 95% accuracy on retrospective cases.",
			"Prompt engineering plus caching and tool composition lowered token consumption and API cost by 65%.",
			"Produces clinician-ready narratives that cite the underlying TCGA evidence used for each recommendation.",
		},
	},
	{
		ID:           "cell-segmentation-pipeline",
		Title:        "Cell Segmentation & Classification Pipeline",
		Description:  "Distributed PyTorch system combining UNet++ variants to accelerate digital pathology workflows for large tissue slides.",
		Technologies: []string{"UNet++", "PyTorch", "CUDA", "Distributed Training", "Computer Vision"},
		GitHub:       ptr("https://github.com/prembhajaj/Cell-Segmentation-And-Classification-Pipeline"),
		Features: []string{
			"Ensembled three segmentation backbones to lift mean IoU from 0.68 to 0.83 on curated tissue datasets.",
			"Engineered sliding-window inference and GPU-aware scheduling that cut slide processing from 50 hours to 6 hours.",
			"Packaged the pipeline with reproducible configs so researchers can swap datasets or model weights quickly.",
		},
	},
	{
		ID:           "social-media-sentiment-analysis",
		Title:        "Social Media Sentiment Analysis - Reddit & 4chan",
		Description:  "End-to-end NLP pipeline built with Spark NLP to flag 20K+ toxic finance posts with an interactive real-time dashboard, with 4 intuitive filters",
		Technologies: []string{"Spark NLP", "AWS Fargate", "ECS", "Big Data", "Python"},
		GitHub:       ptr("https://github.com/prembhajaj/Social-Media-Sentiment-Analysis"),
		Features: []string{
			"Streamlined ingestion from Reddit and 4chan plus cleaning utilities for noisy social data.",
			"Utilized Spark NLP model to flag toxic content reaching an F1 score of 0.89.",
			"Productionized via EMR with job orchestration so analysts can refresh predictions on-demand.",
			"Built an interactive dashboard with real-time sentiment visualizations and filtering options.",
		},
	},
}

// Default returns a copy of the built-in dataset
func Default() models.Content {
	return Clone(models.Content{
		About:     defaultAbout,
		Education: defaultEducation,
		Projects:  defaultProjects,
	})
}

// Clone deep-copies c so the result shares no slices or pointers with it
func Clone(c models.Content) models.Content {
	out := models.Content{
		About: models.About{
			Intro:        c.About.Intro,
			Highlights:   append([]models.Highlight(nil), c.About.Highlights...),
			Publications: append([]models.Publication(nil), c.About.Publications...),
		},
	}

	for _, cat := range c.About.Skills {
		cat.Skills = append([]string(nil), cat.Skills...)
		out.About.Skills = append(out.About.Skills, cat)
	}

	for _, e := range c.Education {
		e.GPA = clonePtr(e.GPA)
		e.Coursework = append([]string(nil), e.Coursework...)
		out.Education = append(out.Education, e)
	}

	for _, p := range c.Projects {
		p.Technologies = append([]string(nil), p.Technologies...)
		p.Features = append([]string(nil), p.Features...)
		p.GitHub = clonePtr(p.GitHub)
		p.Demo = clonePtr(p.Demo)
		out.Projects = append(out.Projects, p)
	}

	return out
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

package vocab

// Defaults returns the built-in vocabularies. They mirror
// config/vocabularies.yaml and exist so a missing or broken config file
// degrades the classifiers instead of crashing the batch.
func Defaults() *Vocabularies {
	return &Vocabularies{
		Skills: SkillVocab{
			Categories: []KeywordGroup{
				{Name: "Programming Language", Keywords: []string{
					"Python", "JavaScript", "Java", "C++", "C#", "Ruby", "PHP", "Go",
					"Rust", "Swift", "Kotlin", "TypeScript", "R", "Scala", "Perl",
				}},
				{Name: "Framework/Library", Keywords: []string{
					"React", "Angular", "Vue.js", "Node.js", "Django", "Flask",
					"FastAPI", "Spring Boot", "Next.js", "Flutter", "Pandas", "NumPy",
					"Scikit-learn", "TensorFlow", "PyTorch",
				}},
				{Name: "Database", Keywords: []string{
					"SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis", "Cassandra",
					"DynamoDB", "Oracle", "SQL Server",
				}},
				{Name: "Cloud/DevOps", Keywords: []string{
					"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform",
					"Ansible", "CI/CD", "Jenkins",
				}},
				{Name: "Methodology/Process", Keywords: []string{"Scrum", "Kanban", "Agile"}},
				{Name: "Data Analysis/BI", Keywords: []string{"Power BI", "Tableau", "ETL", "Data Analysis"}},
				{Name: "Version Control", Keywords: []string{"Git", "GitHub", "GitLab", "Bitbucket"}},
			},
		},
		Sectors: []KeywordGroup{
			{Name: "Fintech", Keywords: []string{
				"fintech", "financial", "payment", "payments", "banking", "banco",
				"lending", "insurtech", "crypto",
			}},
			{Name: "EdTech", Keywords: []string{
				"edtech", "education", "learning", "e-learning", "academy", "educación",
			}},
			{Name: "HealthTech", Keywords: []string{
				"healthtech", "health", "medical", "clinic", "biotech", "salud",
			}},
			{Name: "E-commerce", Keywords: []string{
				"ecommerce", "e-commerce", "marketplace", "retail tech",
			}},
			{Name: "Future of Work", Keywords: []string{
				"remote work", "collaboration", "hr tech", "talent platform",
			}},
		},
		Seniority: SeniorityVocab{
			Tiers: []KeywordGroup{
				{Name: "Executive", Keywords: []string{
					"vp", "vice president", "cxo", "ceo", "cmo", "cto", "co-founder",
					"founder", "director",
				}},
				{Name: "Lead / Manager", Keywords: []string{
					"lead", "manager", "head of", "jefe", "coordinador", "principal",
					"staff", "team lead", "líder",
				}},
				{Name: "Senior", Keywords: []string{"senior", "sr.", "sr", "advanced", "expert"}},
				{Name: "Mid", Keywords: []string{"mid", "semi-senior", "semisenior", "regular", "intermedio"}},
				{Name: "Junior", Keywords: []string{
					"junior", "jr.", "jr", "entry-level", "trainee", "practicante",
					"pasante", "asistente", "early career", "becario",
				}},
			},
			FallbackRoles: []string{
				"engineer", "developer", "analyst", "specialist", "architect",
				"programador", "consultor", "diseñador", "owner", "scrum master",
				"desarrollador", "ingeniero", "analista", "especialista",
			},
		},
		Geo: GeoVocab{
			Countries: []CountryEntry{
				{Name: "Mexico", Aliases: []string{"méxico", "cdmx", "ciudad de mexico", "guadalajara", "monterrey"}},
				{Name: "Colombia", Aliases: []string{"bogota", "bogotá", "medellin", "medellín", "cali"}},
				{Name: "Argentina", Aliases: []string{"buenos aires", "cordoba", "córdoba", "rosario"}},
				{Name: "Chile", Aliases: []string{"santiago", "valparaiso", "valparaíso"}},
				{Name: "Peru", Aliases: []string{"perú", "lima", "arequipa"}},
				{Name: "Brazil", Aliases: []string{"brasil", "sao paulo", "são paulo", "rio de janeiro"}},
				{Name: "Uruguay", Aliases: []string{"montevideo"}},
				{Name: "Spain", Aliases: []string{"españa", "madrid", "barcelona"}},
				{Name: "United States", Aliases: []string{"usa", "united states", "san francisco", "new york", "estados unidos"}},
			},
			RemoteIndicators: []string{"remote", "remoto", "work from home", "anywhere", "teletrabajo"},
		},
		Company: CompanyVocab{
			Sizes: []KeywordGroup{
				{Name: "Multinational (1000+)", Keywords: []string{
					"google", "amazon", "microsoft", "ibm", "oracle", "accenture",
					"global", "international", "telefónica", "santander", "bbva",
					"mercadolibre",
				}},
				{Name: "Large (201-1000)", Keywords: []string{
					"corp", "corporation", "group", "systems", "financial", "holding",
					"enterprise",
				}},
				{Name: "Medium (51-200)", Keywords: []string{
					"solutions", "services", "consulting", "agency", "agencia",
				}},
				{Name: "Startup (1-50)", Keywords: []string{
					"startup", "labs", "tech", "innov", "digital", "app", "venture",
				}},
			},
			Industries: []KeywordGroup{
				{Name: "Fintech", Keywords: []string{"fintech", "bank", "banco", "financial", "finance", "credit", "lending"}},
				{Name: "EdTech", Keywords: []string{"edtech", "education", "educación", "learning", "academy", "campus"}},
				{Name: "HealthTech", Keywords: []string{"health", "medical", "hospital", "clinic", "care", "biotech"}},
				{Name: "E-commerce", Keywords: []string{"store", "shop", "market", "retail", "commerce", "ecommerce"}},
				{Name: "Consulting", Keywords: []string{"consulting", "consultoría", "strategy"}},
			},
			Countries: []CountryEntry{
				{Name: "Mexico", Aliases: []string{"méxico", "cdmx", "gdl"}},
				{Name: "Colombia", Aliases: []string{"bogota", "medellin"}},
				{Name: "Argentina", Aliases: []string{"buenos aires"}},
				{Name: "Spain", Aliases: []string{"españa", "madrid", "barcelona"}},
				{Name: "United States", Aliases: []string{"usa", "united states", "san francisco"}},
			},
			Types: []KeywordGroup{
				{Name: "Consulting", Keywords: []string{"consultoría", "consulting", "services"}},
				{Name: "Product/Technology", Keywords: []string{"product", "saas", "software"}},
				{Name: "HR/Staffing", Keywords: []string{"outsourcing", "staffing", "recruitment"}},
				{Name: "Financial", Keywords: []string{"bank", "banco", "capital", "insurance"}},
			},
		},
	}
}

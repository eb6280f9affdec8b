package catalog

import "learnhub/internal/models"

var academicCourses = []models.AcademicCourse{
	{
		ID:             "primary-math-basics",
		Title:          "Mathematics Fundamentals",
		Description:    "Learn basic arithmetic, numbers, addition, subtraction, multiplication, and division.",
		EducationLevel: models.LevelPrimary,
		Difficulty:     models.DifficultyBeginner,
		Subject:        "Mathematics",
		Duration:       "8 weeks",
		OrderIndex:     1,
	},
	{
		ID:             "primary-english-basics",
		Title:          "English Language Basics",
		Description:    "Master reading, writing, grammar, and vocabulary for effective communication.",
		EducationLevel: models.LevelPrimary,
		Difficulty:     models.DifficultyBeginner,
		Subject:        "English",
		Duration:       "8 weeks",
		OrderIndex:     2,
	},
	{
		ID:             "primary-kiswahili-basics",
		Title:          "Kiswahili Language Fundamentals",
		Description:    "Learn to read, write, and speak Kiswahili with proper grammar and vocabulary.",
		EducationLevel: models.LevelPrimary,
		Difficulty:     models.DifficultyBeginner,
		Subject:        "Kiswahili",
		Duration:       "8 weeks",
		OrderIndex:     3,
	},
	{
		ID:             "primary-science-basics",
		Title:          "Science Exploration",
		Description:    "Discover the wonders of nature, living things, matter, and basic scientific principles.",
		EducationLevel: models.LevelPrimary,
		Difficulty:     models.DifficultyBeginner,
		Subject:        "Science",
		Duration:       "8 weeks",
		OrderIndex:     4,
	},
	{
		ID:             "primary-social-studies",
		Title:          "Social Studies Foundations",
		Description:    "Learn about your community, country, culture, history, and citizenship.",
		EducationLevel: models.LevelPrimary,
		Difficulty:     models.DifficultyBeginner,
		Subject:        "Social Studies",
		Duration:       "8 weeks",
		OrderIndex:     5,
	},
	{
		ID:             "primary-religious-education",
		Title:          "Religious Education",
		Description:    "Explore moral values, ethics, and religious teachings to build character.",
		EducationLevel: models.LevelPrimary,
		Difficulty:     models.DifficultyBeginner,
		Subject:        "Religious Education",
		Duration:       "6 weeks",
		OrderIndex:     6,
	},
	{
		ID:             "primary-arts-crafts",
		Title:          "Arts and Crafts",
		Description:    "Express creativity through drawing, painting, and hands-on craft projects.",
		EducationLevel: models.LevelPrimary,
		Difficulty:     models.DifficultyBeginner,
		Subject:        "Arts",
		Duration:       "6 weeks",
		OrderIndex:     7,
	},
	{
		ID:             "primary-physical-education",
		Title:          "Physical Education and Sports",
		Description:    "Learn about fitness, health, and develop sports skills through play.",
		EducationLevel: models.LevelPrimary,
		Difficulty:     models.DifficultyBeginner,
		Subject:        "Physical Education",
		Duration:       "6 weeks",
		OrderIndex:     8,
	},
	{
		ID:             "highschool-advanced-math",
		Title:          "Advanced Mathematics",
		Description:    "Master algebra, geometry, trigonometry, and calculus fundamentals.",
		EducationLevel: models.LevelHighschool,
		Difficulty:     models.DifficultyIntermediate,
		Subject:        "Mathematics",
		Duration:       "16 weeks",
		OrderIndex:     10,
	},
	{
		ID:             "highschool-english-literature",
		Title:          "English Language and Literature",
		Description:    "Develop advanced writing skills, literary analysis, and critical thinking.",
		EducationLevel: models.LevelHighschool,
		Difficulty:     models.DifficultyIntermediate,
		Subject:        "English",
		Duration:       "16 weeks",
		OrderIndex:     11,
	},
	{
		ID:             "highschool-kiswahili-advanced",
		Title:          "Advanced Kiswahili and Literature",
		Description:    "Study Kiswahili literature, poetry, and advanced composition.",
		EducationLevel: models.LevelHighschool,
		Difficulty:     models.DifficultyIntermediate,
		Subject:        "Kiswahili",
		Duration:       "16 weeks",
		OrderIndex:     12,
	},
	{
		ID:             "highschool-biology",
		Title:          "Biology",
		Description:    "Explore life sciences, cells, genetics, ecology, and human anatomy.",
		EducationLevel: models.LevelHighschool,
		Difficulty:     models.DifficultyIntermediate,
		Subject:        "Biology",
		Duration:       "16 weeks",
		OrderIndex:     13,
	},
	{
		ID:             "highschool-chemistry",
		Title:          "Chemistry",
		Description:    "Study matter, chemical reactions, organic chemistry, and laboratory techniques.",
		EducationLevel: models.LevelHighschool,
		Difficulty:     models.DifficultyIntermediate,
		Subject:        "Chemistry",
		Duration:       "16 weeks",
		OrderIndex:     14,
	},
	{
		ID:             "highschool-physics",
		Title:          "Physics",
		Description:    "Understand mechanics, electricity, magnetism, waves, and modern physics.",
		EducationLevel: models.LevelHighschool,
		Difficulty:     models.DifficultyIntermediate,
		Subject:        "Physics",
		Duration:       "16 weeks",
		OrderIndex:     15,
	},
	{
		ID:             "highschool-history",
		Title:          "History and Government",
		Description:    "Learn world history, national history, and political systems.",
		EducationLevel: models.LevelHighschool,
		Difficulty:     models.DifficultyIntermediate,
		Subject:        "History",
		Duration:       "14 weeks",
		OrderIndex:     16,
	},
	{
		ID:             "highschool-geography",
		Title:          "Geography",
		Description:    "Study physical geography, human geography, and environmental studies.",
		EducationLevel: models.LevelHighschool,
		Difficulty:     models.DifficultyIntermediate,
		Subject:        "Geography",
		Duration:       "14 weeks",
		OrderIndex:     17,
	},
	{
		ID:             "medicine-anatomy",
		Title:          "Human Anatomy and Physiology",
		Description:    "Comprehensive study of human body systems and their functions.",
		EducationLevel: models.LevelAdvanced,
		Difficulty:     models.DifficultyAdvanced,
		Subject:        "Medicine",
		CareerPath:     "Medicine",
		Duration:       "20 weeks",
		OrderIndex:     20,
	},
	{
		ID:             "medicine-pharmacology",
		Title:          "Pharmacology Fundamentals",
		Description:    "Study drugs, their mechanisms, interactions, and therapeutic applications.",
		EducationLevel: models.LevelAdvanced,
		Difficulty:     models.DifficultyAdvanced,
		Subject:        "Medicine",
		CareerPath:     "Medicine",
		Duration:       "18 weeks",
		OrderIndex:     21,
	},
	{
		ID:             "accounting-principles",
		Title:          "Accounting Principles",
		Description:    "Master financial accounting, bookkeeping, and financial statements.",
		EducationLevel: models.LevelAdvanced,
		Difficulty:     models.DifficultyAdvanced,
		Subject:        "Accounting",
		CareerPath:     "Accounting",
		Duration:       "18 weeks",
		OrderIndex:     30,
	},
	{
		ID:             "accounting-taxation",
		Title:          "Taxation and Tax Law",
		Description:    "Learn tax regulations, corporate taxation, and tax planning strategies.",
		EducationLevel: models.LevelAdvanced,
		Difficulty:     models.DifficultyAdvanced,
		Subject:        "Accounting",
		CareerPath:     "Accounting",
		Duration:       "16 weeks",
		OrderIndex:     31,
	},
	{
		ID:             "education-pedagogy",
		Title:          "Teaching Methods and Pedagogy",
		Description:    "Learn effective teaching strategies, curriculum design, and classroom management.",
		EducationLevel: models.LevelAdvanced,
		Difficulty:     models.DifficultyAdvanced,
		Subject:        "Education",
		CareerPath:     "Education",
		Duration:       "16 weeks",
		OrderIndex:     40,
	},
	{
		ID:             "education-psychology",
		Title:          "Educational Psychology",
		Description:    "Understand learning theories, child development, and student behavior.",
		EducationLevel: models.LevelAdvanced,
		Difficulty:     models.DifficultyAdvanced,
		Subject:        "Education",
		CareerPath:     "Education",
		Duration:       "14 weeks",
		OrderIndex:     41,
	},
	{
		ID:             "engineering-mechanics",
		Title:          "Engineering Mechanics",
		Description:    "Study statics, dynamics, and strength of materials for engineering applications.",
		EducationLevel: models.LevelAdvanced,
		Difficulty:     models.DifficultyAdvanced,
		Subject:        "Engineering",
		CareerPath:     "Engineering",
		Duration:       "20 weeks",
		OrderIndex:     50,
	},
	{
		ID:             "engineering-electrical",
		Title:          "Electrical Engineering Fundamentals",
		Description:    "Learn circuit theory, electronics, and electrical systems design.",
		EducationLevel: models.LevelAdvanced,
		Difficulty:     models.DifficultyAdvanced,
		Subject:        "Engineering",
		CareerPath:     "Engineering",
		Duration:       "20 weeks",
		OrderIndex:     51,
	},
	{
		ID:             "business-management",
		Title:          "Business Management Essentials",
		Description:    "Master organizational behavior, strategic planning, and leadership skills.",
		EducationLevel: models.LevelAdvanced,
		Difficulty:     models.DifficultyAdvanced,
		Subject:        "Business",
		CareerPath:     "Business Administration",
		Duration:       "16 weeks",
		OrderIndex:     60,
	},
	{
		ID:             "business-marketing",
		Title:          "Marketing and Sales Strategy",
		Description:    "Learn market analysis, consumer behavior, and digital marketing techniques.",
		EducationLevel: models.LevelAdvanced,
		Difficulty:     models.DifficultyAdvanced,
		Subject:        "Business",
		CareerPath:     "Business Administration",
		Duration:       "14 weeks",
		OrderIndex:     61,
	},
	{
		ID:             "law-constitutional",
		Title:          "Constitutional Law",
		Description:    "Study constitutional principles, rights, and governmental powers.",
		EducationLevel: models.LevelAdvanced,
		Difficulty:     models.DifficultyAdvanced,
		Subject:        "Law",
		CareerPath:     "Law",
		Duration:       "18 weeks",
		OrderIndex:     70,
	},
	{
		ID:             "law-criminal",
		Title:          "Criminal Law and Procedure",
		Description:    "Learn criminal justice system, offenses, and legal procedures.",
		EducationLevel: models.LevelAdvanced,
		Difficulty:     models.DifficultyAdvanced,
		Subject:        "Law",
		CareerPath:     "Law",
		Duration:       "18 weeks",
		OrderIndex:     71,
	},
	{
		ID:             "it-programming",
		Title:          "Software Development",
		Description:    "Master programming, algorithms, and software engineering principles.",
		EducationLevel: models.LevelAdvanced,
		Difficulty:     models.DifficultyAdvanced,
		Subject:        "Information Technology",
		CareerPath:     "Information Technology",
		Duration:       "20 weeks",
		OrderIndex:     80,
	},
	{
		ID:             "it-networks",
		Title:          "Network Administration and Security",
		Description:    "Learn network architecture, cybersecurity, and system administration.",
		EducationLevel: models.LevelAdvanced,
		Difficulty:     models.DifficultyAdvanced,
		Subject:        "Information Technology",
		CareerPath:     "Information Technology",
		Duration:       "18 weeks",
		OrderIndex:     81,
	},
	{
		ID:             "nursing-fundamentals",
		Title:          "Nursing Fundamentals",
		Description:    "Learn patient care, medical procedures, and nursing ethics.",
		EducationLevel: models.LevelAdvanced,
		Difficulty:     models.DifficultyAdvanced,
		Subject:        "Nursing",
		CareerPath:     "Nursing",
		Duration:       "20 weeks",
		OrderIndex:     90,
	},
	{
		ID:             "nursing-clinical",
		Title:          "Clinical Nursing Practice",
		Description:    "Develop clinical skills, diagnosis, and patient management techniques.",
		EducationLevel: models.LevelAdvanced,
		Difficulty:     models.DifficultyAdvanced,
		Subject:        "Nursing",
		CareerPath:     "Nursing",
		Duration:       "20 weeks",
		OrderIndex:     91,
	},
	{
		ID:             "agriculture-crop",
		Title:          "Crop Production and Management",
		Description:    "Study crop science, soil management, and sustainable farming practices.",
		EducationLevel: models.LevelAdvanced,
		Difficulty:     models.DifficultyAdvanced,
		Subject:        "Agriculture",
		CareerPath:     "Agriculture",
		Duration:       "18 weeks",
		OrderIndex:     100,
	},
	{
		ID:             "agriculture-animal",
		Title:          "Animal Husbandry and Veterinary Science",
		Description:    "Learn livestock management, animal health, and veterinary care.",
		EducationLevel: models.LevelAdvanced,
		Difficulty:     models.DifficultyAdvanced,
		Subject:        "Agriculture",
		CareerPath:     "Agriculture",
		Duration:       "18 weeks",
		OrderIndex:     101,
	},
	{
		ID:             "architecture-design",
		Title:          "Architectural Design Principles",
		Description:    "Master building design, spatial planning, and architectural theory.",
		EducationLevel: models.LevelAdvanced,
		Difficulty:     models.DifficultyAdvanced,
		Subject:        "Architecture",
		CareerPath:     "Architecture",
		Duration:       "20 weeks",
		OrderIndex:     110,
	},
	{
		ID:             "architecture-construction",
		Title:          "Construction Technology",
		Description:    "Learn construction methods, materials, and project management.",
		EducationLevel: models.LevelAdvanced,
		Difficulty:     models.DifficultyAdvanced,
		Subject:        "Architecture",
		CareerPath:     "Architecture",
		Duration:       "18 weeks",
		OrderIndex:     111,
	},
	{
		ID:             "psychology-clinical",
		Title:          "Clinical Psychology",
		Description:    "Study mental health disorders, diagnosis, and therapeutic interventions.",
		EducationLevel: models.LevelAdvanced,
		Difficulty:     models.DifficultyAdvanced,
		Subject:        "Psychology",
		CareerPath:     "Psychology",
		Duration:       "18 weeks",
		OrderIndex:     120,
	},
	{
		ID:             "psychology-counseling",
		Title:          "Counseling and Therapy Techniques",
		Description:    "Learn counseling methods, communication skills, and client management.",
		EducationLevel: models.LevelAdvanced,
		Difficulty:     models.DifficultyAdvanced,
		Subject:        "Psychology",
		CareerPath:     "Psychology",
		Duration:       "16 weeks",
		OrderIndex:     121,
	},
}

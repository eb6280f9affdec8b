package catalog

import "learnhub/internal/models"

var programmingCourses = []models.ProgrammingCourse{
	{
		ID:             "primary-html-basics",
		Title:          "My First Website - HTML Basics",
		Description:    "Learn to create your first webpage! Discover how to add headings, paragraphs, images, and links.",
		EducationLevel: models.LevelPrimary,
		Difficulty:     models.DifficultyBeginner,
		Language:       models.LanguageHTML,
		Duration:       "4 weeks",
		OrderIndex:     1,
	},
	{
		ID:             "primary-css-colors",
		Title:          "Making Websites Colorful with CSS",
		Description:    "Learn to add colors, fonts, and make your websites beautiful!",
		EducationLevel: models.LevelPrimary,
		Difficulty:     models.DifficultyBeginner,
		Language:       models.LanguageCSS,
		Duration:       "4 weeks",
		OrderIndex:     2,
	},
	{
		ID:             "primary-python-intro",
		Title:          "Python for Kids - Getting Started",
		Description:    "Start your coding journey with Python! Learn to print messages and do simple math.",
		EducationLevel: models.LevelPrimary,
		Difficulty:     models.DifficultyBeginner,
		Language:       models.LanguagePython,
		Duration:       "6 weeks",
		OrderIndex:     3,
	},
	{
		ID:             "highschool-html-advanced",
		Title:          "HTML5 - Building Modern Websites",
		Description:    "Master semantic HTML, forms, tables, and multimedia elements for professional websites.",
		EducationLevel: models.LevelHighschool,
		Difficulty:     models.DifficultyIntermediate,
		Language:       models.LanguageHTML,
		Duration:       "8 weeks",
		OrderIndex:     10,
	},
	{
		ID:             "highschool-css-responsive",
		Title:          "Responsive Web Design with CSS",
		Description:    "Learn CSS Grid, Flexbox, and responsive design to create websites that work on all devices.",
		EducationLevel: models.LevelHighschool,
		Difficulty:     models.DifficultyIntermediate,
		Language:       models.LanguageCSS,
		Duration:       "10 weeks",
		OrderIndex:     11,
	},
	{
		ID:             "highschool-javascript-fundamentals",
		Title:          "JavaScript Fundamentals",
		Description:    "Learn programming basics with JavaScript: variables, functions, loops, and DOM manipulation.",
		EducationLevel: models.LevelHighschool,
		Difficulty:     models.DifficultyIntermediate,
		Language:       models.LanguageJavaScript,
		Duration:       "12 weeks",
		OrderIndex:     12,
	},
	{
		ID:             "highschool-python-programming",
		Title:          "Python Programming Essentials",
		Description:    "Master Python fundamentals: data structures, functions, file handling, and object-oriented programming.",
		EducationLevel: models.LevelHighschool,
		Difficulty:     models.DifficultyIntermediate,
		Language:       models.LanguagePython,
		Duration:       "12 weeks",
		OrderIndex:     13,
	},
	{
		ID:             "advanced-javascript-frameworks",
		Title:          "Modern JavaScript & React",
		Description:    "Build professional web applications with modern JavaScript, ES6+, and React framework.",
		EducationLevel: models.LevelAdvanced,
		Difficulty:     models.DifficultyAdvanced,
		Language:       models.LanguageJavaScript,
		Duration:       "16 weeks",
		OrderIndex:     20,
	},
	{
		ID:             "advanced-python-data-science",
		Title:          "Python for Data Science & AI",
		Description:    "Advanced Python with pandas, NumPy, machine learning, and data visualization.",
		EducationLevel: models.LevelAdvanced,
		Difficulty:     models.DifficultyAdvanced,
		Language:       models.LanguagePython,
		Duration:       "20 weeks",
		OrderIndex:     21,
	},
	{
		ID:             "advanced-python-backend",
		Title:          "Backend Development with Python",
		Description:    "Build scalable web applications with Django, Flask, databases, and APIs.",
		EducationLevel: models.LevelAdvanced,
		Difficulty:     models.DifficultyAdvanced,
		Language:       models.LanguagePython,
		Duration:       "18 weeks",
		OrderIndex:     22,
	},
	{
		ID:             "advanced-fullstack-web",
		Title:          "Full Stack Web Development",
		Description:    "Master HTML, CSS, JavaScript, and Python to become a full-stack developer.",
		EducationLevel: models.LevelAdvanced,
		Difficulty:     models.DifficultyAdvanced,
		Language:       models.LanguageJavaScript,
		Duration:       "24 weeks",
		OrderIndex:     23,
	},
}

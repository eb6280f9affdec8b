package catalog

import "learnhub/internal/models"

var generalCourses = []models.CatalogCourse{
	{
		ID:          "web-dev-101",
		Title:       "Web Development Fundamentals",
		Description: "Learn HTML, CSS, and JavaScript from scratch. Build responsive websites and master the fundamentals of web development.",
		Image:       "/assets/course-webdev.jpg",
		Duration:    "12 weeks",
		Students:    15420,
		Level:       "Beginner",
		Materials: []models.Material{
			{ID: "1", Title: "Introduction to HTML", Type: models.MaterialVideo, Duration: "45 min"},
			{ID: "2", Title: "HTML Elements Guide", Type: models.MaterialPDF},
			{ID: "3", Title: "HTML Quiz", Type: models.MaterialQuiz},
			{ID: "4", Title: "CSS Basics", Type: models.MaterialVideo, Duration: "60 min"},
			{ID: "5", Title: "CSS Flexbox and Grid", Type: models.MaterialArticle},
			{ID: "6", Title: "JavaScript Introduction", Type: models.MaterialVideo, Duration: "90 min"},
		},
	},
	{
		ID:          "data-science",
		Title:       "Data Science with Python",
		Description: "Master data analysis, visualization, and machine learning with Python. Learn pandas, numpy, and scikit-learn.",
		Image:       "/assets/course-datascience.jpg",
		Duration:    "16 weeks",
		Students:    12350,
		Level:       "Intermediate",
		Materials: []models.Material{
			{ID: "1", Title: "Python for Data Science", Type: models.MaterialVideo, Duration: "120 min"},
			{ID: "2", Title: "Pandas Documentation", Type: models.MaterialPDF},
			{ID: "3", Title: "Data Cleaning Quiz", Type: models.MaterialQuiz},
			{ID: "4", Title: "Data Visualization", Type: models.MaterialVideo, Duration: "90 min"},
			{ID: "5", Title: "Machine Learning Basics", Type: models.MaterialVideo, Duration: "150 min"},
		},
	},
	{
		ID:          "digital-marketing",
		Title:       "Digital Marketing Mastery",
		Description: "Learn SEO, social media marketing, content strategy, and analytics to grow your online presence.",
		Image:       "/assets/course-marketing.jpg",
		Duration:    "10 weeks",
		Students:    18900,
		Level:       "Beginner",
		Materials: []models.Material{
			{ID: "1", Title: "Digital Marketing Overview", Type: models.MaterialVideo, Duration: "40 min"},
			{ID: "2", Title: "SEO Fundamentals", Type: models.MaterialArticle},
			{ID: "3", Title: "SEO Quiz", Type: models.MaterialQuiz},
			{ID: "4", Title: "Social Media Strategy", Type: models.MaterialVideo, Duration: "75 min"},
			{ID: "5", Title: "Content Marketing Guide", Type: models.MaterialPDF},
		},
	},
	{
		ID:          "graphic-design",
		Title:       "Graphic Design Essentials",
		Description: "Master design principles, typography, color theory, and industry-standard tools like Adobe Creative Suite.",
		Image:       "/assets/course-design.jpg",
		Duration:    "14 weeks",
		Students:    9800,
		Level:       "Beginner",
		Materials: []models.Material{
			{ID: "1", Title: "Design Principles", Type: models.MaterialVideo, Duration: "50 min"},
			{ID: "2", Title: "Color Theory Guide", Type: models.MaterialPDF},
			{ID: "3", Title: "Typography Basics", Type: models.MaterialVideo, Duration: "45 min"},
			{ID: "4", Title: "Design Tools Overview", Type: models.MaterialVideo, Duration: "80 min"},
			{ID: "5", Title: "Design Principles Quiz", Type: models.MaterialQuiz},
		},
	},
}

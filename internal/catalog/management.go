package catalog

import "github.com/students-sa/planner-api/internal/models"

func management() *models.MajorProgram {
	return &models.MajorProgram{
		ID:                     "management",
		Name:                   "Business Administration (Management)",
		NameAr:                 "إدارة الأعمال (الإدارة)",
		TotalCredits:           130,
		UniversityRequirements: universityRequirements(),
		SharedFirstYearCourses: islamicCourses(),
		Courses: []models.Course{
			// College level foundation
			{ID: "acct101", Code: "ACCT101", Name: "Principles of Accounting", NameAr: "مبادئ المحاسبة", Credits: 3, Category: models.CategoryCore, Semester: 3},
			{ID: "acct301", Code: "ACCT301", Name: "Cost Accounting", NameAr: "محاسبة التكاليف", Credits: 3, Prerequisites: []string{"acct101"}, Category: models.CategoryCore, Semester: 5},
			{ID: "ecom101", Code: "ECOM101", Name: "E-Commerce", NameAr: "التجارة الإلكترونية", Credits: 3, Category: models.CategoryCore, Semester: 4},
			{ID: "ecom201", Code: "ECOM201", Name: "Introduction to E-Management", NameAr: "مقدمة في الإدارة الإلكترونية", Credits: 3, Prerequisites: []string{"mgt101"}, Category: models.CategoryCore, Semester: 6},
			{ID: "econ101", Code: "ECON101", Name: "Microeconomics", NameAr: "الاقتصاد الجزئي", Credits: 3, Category: models.CategoryCore, Semester: 3},
			{ID: "econ201", Code: "ECON201", Name: "Macroeconomics", NameAr: "الاقتصاد الكلي", Credits: 3, Prerequisites: []string{"econ101"}, Category: models.CategoryCore, Semester: 6},
			{ID: "fin101", Code: "FIN101", Name: "Principles of Finance", NameAr: "مبادئ التمويل", Credits: 3, Prerequisites: []string{"acct101"}, Category: models.CategoryCore, Semester: 4},
			{ID: "law101", Code: "LAW101", Name: "Legal Environment of Business", NameAr: "البيئة القانونية للأعمال", Credits: 3, Category: models.CategoryCore, Semester: 3},
			{ID: "mgt101", Code: "MGT101", Name: "Principles of Management", NameAr: "مبادئ الإدارة", Credits: 3, Category: models.CategoryCore, Semester: 3},
			{ID: "mgt201", Code: "MGT201", Name: "Marketing Management", NameAr: "إدارة التسويق", Credits: 3, Prerequisites: []string{"mgt101"}, Category: models.CategoryCore, Semester: 4},
			{ID: "mgt211", Code: "MGT211", Name: "HR Management", NameAr: "إدارة الموارد البشرية", Credits: 3, Prerequisites: []string{"mgt101"}, Category: models.CategoryCore, Semester: 4},
			{ID: "mgt301", Code: "MGT301", Name: "Organizational Behavior", NameAr: "السلوك التنظيمي", Credits: 3, Prerequisites: []string{"mgt211"}, Category: models.CategoryCore, Semester: 7},
			{ID: "mgt311", Code: "MGT311", Name: "Introduction to Operations Management", NameAr: "مقدمة في إدارة العمليات", Credits: 3, Prerequisites: []string{"mgt101", "stat101"}, Category: models.CategoryCore, Semester: 6},
			{ID: "mgt321", Code: "MGT321", Name: "Introduction to International Business", NameAr: "مقدمة في الأعمال الدولية", Credits: 3, Category: models.CategoryCore, Semester: 5},
			{ID: "mgt322", Code: "MGT322", Name: "Logistics Management", NameAr: "إدارة اللوجستيات", Credits: 3, Prerequisites: []string{"mgt101"}, Category: models.CategoryCore, Semester: 5},
			{ID: "mgt401", Code: "MGT401", Name: "Strategic Management", NameAr: "الإدارة الاستراتيجية", Credits: 3, Prerequisites: []string{"mgt201", "fin101"}, Category: models.CategoryCore, Semester: 7},
			{ID: "mis201", Code: "MIS201", Name: "Management of Information Systems", NameAr: "إدارة نظم المعلومات", Credits: 3, Prerequisites: []string{"mgt101"}, Category: models.CategoryCore, Semester: 6},
			{ID: "stat101", Code: "STAT101", Name: "Statistics", NameAr: "الإحصاء", Credits: 3, Category: models.CategoryCore, Semester: 3},
			{ID: "stat201", Code: "STAT201", Name: "Quantitative Methods", NameAr: "الطرق الكمية", Credits: 3, Prerequisites: []string{"stat101"}, Category: models.CategoryCore, Semester: 4},
			// Major specialization
			{ID: "mgt312", Code: "MGT312", Name: "Decision Making and Problem Solving", NameAr: "اتخاذ القرارات وحل المشكلات", Credits: 3, Prerequisites: []string{"mgt101"}, Category: models.CategoryCore, Semester: 5},
			{ID: "mgt323", Code: "MGT323", Name: "Project Management", NameAr: "إدارة المشاريع", Credits: 3, Prerequisites: []string{"mgt311"}, Category: models.CategoryCore, Semester: 6},
			{ID: "mgt324", Code: "MGT324", Name: "Public Management", NameAr: "الإدارة العامة", Credits: 3, Prerequisites: []string{"mgt101"}, Category: models.CategoryCore, Semester: 6},
			{ID: "mgt402", Code: "MGT402", Name: "Entrepreneurship & Small Business", NameAr: "ريادة الأعمال والمشاريع الصغيرة", Credits: 3, Prerequisites: []string{"mgt101"}, Category: models.CategoryCore, Semester: 7},
			{ID: "mgt403", Code: "MGT403", Name: "Knowledge Management", NameAr: "إدارة المعرفة", Credits: 3, Category: models.CategoryCore, Semester: 7},
			{ID: "mgt404", Code: "MGT404", Name: "Organization Design and Development", NameAr: "تصميم وتطوير المنظمات", Credits: 3, Category: models.CategoryCore, Semester: 8},
			{ID: "mgt421", Code: "MGT421", Name: "Communications Management", NameAr: "إدارة الاتصالات", Credits: 3, Category: models.CategoryCore, Semester: 8},
			{ID: "mgt422", Code: "MGT422", Name: "Business Ethics & Social Responsibility", NameAr: "أخلاقيات الأعمال والمسؤولية الاجتماعية", Credits: 3, Category: models.CategoryCore, Semester: 8},
			{ID: "mgt430", Code: "MGT430", Name: "Internship", NameAr: "التدريب العملي", Credits: 6, Category: models.CategoryCore, HourRequirement: 90, Semester: 8},
			// Business administration concentration
			{ID: "mgt325", Code: "MGT325", Name: "Management of Technology", NameAr: "إدارة التكنولوجيا", Credits: 3, Category: models.CategoryElective, Semester: 8},
			{ID: "mgt424", Code: "MGT424", Name: "Quality Management", NameAr: "إدارة الجودة", Credits: 3, Category: models.CategoryElective, Semester: 8},
			{ID: "mgt425", Code: "MGT425", Name: "Spreadsheet Decision Modeling", NameAr: "نمذجة القرارات بالجداول الإلكترونية", Credits: 3, Category: models.CategoryElective, Semester: 8},
			// E-commerce concentration
			{ID: "ecom301", Code: "ECOM301", Name: "E-Marketing", NameAr: "التسويق الإلكتروني", Credits: 3, Prerequisites: []string{"mgt201"}, Category: models.CategoryElective, Semester: 8},
			{ID: "ecom421", Code: "ECOM421", Name: "E-Business Strategies and Business Models", NameAr: "استراتيجيات الأعمال الإلكترونية ونماذج الأعمال", Credits: 3, Prerequisites: []string{"mgt401"}, Category: models.CategoryElective, Semester: 8},
			{ID: "it404", Code: "IT404", Name: "Web Design", NameAr: "تصميم الويب", Credits: 3, Category: models.CategoryElective, Semester: 8},
			// Accounting concentration
			{ID: "acct201", Code: "ACCT201", Name: "Financial Accounting", NameAr: "المحاسبة المالية", Credits: 3, Prerequisites: []string{"acct101"}, Category: models.CategoryElective, Semester: 8},
			{ID: "acct402", Code: "ACCT402", Name: "Introduction to Accounting Information Systems", NameAr: "مقدمة في نظم المعلومات المحاسبية", Credits: 3, Prerequisites: []string{"acct101", "mis201"}, Category: models.CategoryElective, Semester: 8},
			{ID: "acct422", Code: "ACCT422", Name: "Tax & Zakat Accounting", NameAr: "محاسبة الضرائب والزكاة", Credits: 3, Prerequisites: []string{"acct201"}, Category: models.CategoryElective, Semester: 8},
			// Finance concentration
			{ID: "fin201", Code: "FIN201", Name: "Corporate Finance", NameAr: "التمويل المؤسسي", Credits: 3, Prerequisites: []string{"fin101"}, Category: models.CategoryElective, Semester: 8},
			{ID: "fin401", Code: "FIN401", Name: "Banks Management", NameAr: "إدارة البنوك", Credits: 3, Prerequisites: []string{"fin101"}, Category: models.CategoryElective, Semester: 8},
			{ID: "fin402", Code: "FIN402", Name: "Financial Institutions and Markets", NameAr: "المؤسسات والأسواق المالية", Credits: 3, Prerequisites: []string{"fin101"}, Category: models.CategoryElective, Semester: 8},
		},
	}
}

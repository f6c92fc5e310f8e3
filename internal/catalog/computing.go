package catalog

import "github.com/students-sa/planner-api/internal/models"

func informationTechnology() *models.MajorProgram {
	return &models.MajorProgram{
		ID:                     "information-technology",
		Name:                   "Information Technology",
		NameAr:                 "تقنية المعلومات",
		TotalCredits:           130,
		UniversityRequirements: universityRequirements(),
		SharedFirstYearCourses: computingSharedCourses(
			models.Course{ID: "stat101", Code: "STAT101", Name: "Statistics", NameAr: "الإحصاء", Credits: 3, Category: models.CategoryCore},
		),
		Courses: []models.Course{
			// Semester 3
			{ID: "it231", Code: "IT231", Name: "Introduction to IT and IS", NameAr: "مقدمة في تقنية المعلومات ونظم المعلومات", Credits: 3, Category: models.CategoryCore, Semester: 3},
			{ID: "it232", Code: "IT232", Name: "Object Oriented Programming", NameAr: "البرمجة الكائنية التوجه", Credits: 3, Category: models.CategoryCore, Semester: 3},
			{ID: "it233", Code: "IT233", Name: "Computer Organization", NameAr: "تنظيم الحاسوب", Credits: 3, Category: models.CategoryCore, Semester: 3},
			// Semester 4
			{ID: "it241", Code: "IT241", Name: "Operating Systems", NameAr: "أنظمة التشغيل", Credits: 3, Prerequisites: []string{"it233"}, Category: models.CategoryCore, Semester: 4},
			{ID: "it244", Code: "IT244", Name: "Introduction to Database", NameAr: "مقدمة في قواعد البيانات", Credits: 3, Prerequisites: []string{"it232"}, Category: models.CategoryCore, Semester: 4},
			{ID: "it245", Code: "IT245", Name: "Data Structure", NameAr: "هياكل البيانات", Credits: 3, Prerequisites: []string{"it232"}, Category: models.CategoryCore, Semester: 4},
			// Semester 5
			{ID: "it351", Code: "IT351", Name: "Computer Networks", NameAr: "شبكات الحاسوب", Credits: 3, Prerequisites: []string{"it241"}, Category: models.CategoryCore, Semester: 5},
			{ID: "it352", Code: "IT352", Name: "Human Computer Interaction", NameAr: "التفاعل بين الإنسان والحاسوب", Credits: 3, Prerequisites: []string{"it231", "it245"}, Category: models.CategoryCore, Semester: 5},
			{ID: "it353", Code: "IT353", Name: "System Analysis and Design", NameAr: "تحليل وتصميم النظم", Credits: 3, Prerequisites: []string{"it245"}, Category: models.CategoryCore, Semester: 5},
			{ID: "it354", Code: "IT354", Name: "Database Management Systems", NameAr: "أنظمة إدارة قواعد البيانات", Credits: 3, Prerequisites: []string{"it244"}, Category: models.CategoryCore, Semester: 5},
			// Semester 6
			{ID: "it361", Code: "IT361", Name: "Web Technologies", NameAr: "تقنيات الويب", Credits: 3, Prerequisites: []string{"it352", "it244"}, Category: models.CategoryCore, Semester: 6},
			{ID: "it362", Code: "IT362", Name: "IT Project Management", NameAr: "إدارة مشاريع تقنية المعلومات", Credits: 3, Prerequisites: []string{"it353"}, Category: models.CategoryCore, Semester: 6},
			{ID: "it363", Code: "IT363", Name: "Network Management", NameAr: "إدارة الشبكات", Credits: 3, Prerequisites: []string{"it351"}, Category: models.CategoryCore, Semester: 6},
			{ID: "it364", Code: "IT364", Name: "IT Entrepreneurship and Innovation", NameAr: "ريادة الأعمال والابتكار في تقنية المعلومات", Credits: 3, Prerequisites: []string{"it244"}, Category: models.CategoryCore, Semester: 6},
			{ID: "it365", Code: "IT365", Name: "Enterprise Systems", NameAr: "أنظمة المؤسسات", Credits: 3, Prerequisites: []string{"it352"}, Category: models.CategoryCore, Semester: 6},
			// Semester 7
			{ID: "it474", Code: "IT474", Name: "Introduction to Cyber Security and Digital Crime", NameAr: "مقدمة في الأمن السيبراني والجرائم الرقمية", Credits: 3, Prerequisites: []string{"it363"}, Category: models.CategoryCore, Semester: 7},
			{ID: "it475", Code: "IT475", Name: "Decision Support Systems", NameAr: "أنظمة دعم القرار", Credits: 3, Prerequisites: []string{"it354"}, Category: models.CategoryCore, Semester: 7},
			{ID: "it476", Code: "IT476", Name: "IT Security & Policies", NameAr: "أمن تقنية المعلومات والسياسات", Credits: 3, Prerequisites: []string{"it351"}, Category: models.CategoryCore, Semester: 7},
			{ID: "it478", Code: "IT478", Name: "Network Security", NameAr: "أمن الشبكات", Credits: 3, Prerequisites: []string{"it363"}, Category: models.CategoryCore, Semester: 7},
			{ID: "it479", Code: "IT479", Name: "Senior Project I", NameAr: "مشروع التخرج الأول", Credits: 3, Prerequisites: []string{"it354", "it361"}, Category: models.CategoryCore, Semester: 7},
			// Semester 8
			{ID: "it484", Code: "IT484", Name: "Wireless Sensor Networks", NameAr: "شبكات الاستشعار اللاسلكية", Credits: 3, Prerequisites: []string{"it474"}, Category: models.CategoryElective, Semester: 8},
			{ID: "it485", Code: "IT485", Name: "Professional Ethics in IT", NameAr: "الأخلاق المهنية في تقنية المعلومات", Credits: 3, Prerequisites: []string{"it362"}, Category: models.CategoryCore, Semester: 8},
			{ID: "it487", Code: "IT487", Name: "Mobile Application Development", NameAr: "تطوير تطبيقات الجوال", Credits: 3, Prerequisites: []string{"it475"}, Category: models.CategoryElective, Semester: 8},
			{ID: "it488", Code: "IT488", Name: "Cyber Forensics", NameAr: "الطب الشرعي الرقمي", Credits: 3, Prerequisites: []string{"it474"}, Category: models.CategoryElective, Semester: 8},
			{ID: "it489", Code: "IT489", Name: "Senior Project II", NameAr: "مشروع التخرج الثاني", Credits: 3, Prerequisites: []string{"it479"}, Category: models.CategoryCore, Semester: 8},
			{ID: "it499", Code: "IT499", Name: "Practical Training", NameAr: "التدريب العملي", Credits: 3, Category: models.CategoryCore, HourRequirement: 86, Semester: 8},
		},
	}
}

func dataScience() *models.MajorProgram {
	return &models.MajorProgram{
		ID:                     "data-science",
		Name:                   "Data Science",
		NameAr:                 "علم البيانات",
		TotalCredits:           130,
		UniversityRequirements: universityRequirements(),
		SharedFirstYearCourses: computingSharedCourses(
			models.Course{ID: "stat201", Code: "STAT201", Name: "Introduction to Statistics and Probabilities", NameAr: "مقدمة في الإحصاء والاحتماليات", Credits: 3, Prerequisites: []string{"math150"}, Category: models.CategoryCore},
		),
		Courses: []models.Course{
			// Semester 3
			{ID: "ds230", Code: "DS230", Name: "Object Oriented Programming", NameAr: "البرمجة الكائنية التوجه", Credits: 3, Category: models.CategoryCore, Semester: 3},
			{ID: "ds231", Code: "DS231", Name: "Introduction to Data Science Programming", NameAr: "مقدمة في برمجة علم البيانات", Credits: 3, Category: models.CategoryCore, Semester: 3},
			// Semester 4
			{ID: "ds240", Code: "DS240", Name: "Data Structure", NameAr: "هياكل البيانات", Credits: 3, Prerequisites: []string{"ds230"}, Category: models.CategoryCore, Semester: 4},
			{ID: "ds242", Code: "DS242", Name: "Advanced Data Science Programming", NameAr: "البرمجة المتقدمة لعلم البيانات", Credits: 3, Prerequisites: []string{"ds231"}, Category: models.CategoryCore, Semester: 4},
			{ID: "ds243", Code: "DS243", Name: "Computer Architecture and Organization", NameAr: "معمارية وتنظيم الحاسوب", Credits: 3, Category: models.CategoryCore, Semester: 4},
			// Semester 5
			{ID: "ds350", Code: "DS350", Name: "Introduction to Database", NameAr: "مقدمة في قواعد البيانات", Credits: 3, Prerequisites: []string{"ds240"}, Category: models.CategoryCore, Semester: 5},
			{ID: "ds351", Code: "DS351", Name: "Operating Systems", NameAr: "أنظمة التشغيل", Credits: 3, Prerequisites: []string{"ds243"}, Category: models.CategoryCore, Semester: 5},
			{ID: "ds352", Code: "DS352", Name: "Design and Analysis of Algorithms", NameAr: "تصميم وتحليل الخوارزميات", Credits: 3, Prerequisites: []string{"ds240"}, Category: models.CategoryCore, Semester: 5},
			{ID: "ds353", Code: "DS353", Name: "Project Management in Computing", NameAr: "إدارة المشاريع في الحوسبة", Credits: 3, Category: models.CategoryCore, Semester: 5},
			// Semester 6
			{ID: "ds360", Code: "DS360", Name: "Computer Networks", NameAr: "شبكات الحاسوب", Credits: 3, Prerequisites: []string{"ds243"}, Category: models.CategoryCore, Semester: 6},
			{ID: "ds361", Code: "DS361", Name: "System Analysis and Design", NameAr: "تحليل وتصميم النظم", Credits: 3, Prerequisites: []string{"ds240"}, Category: models.CategoryCore, Semester: 6},
			{ID: "ds362", Code: "DS362", Name: "Web Programming", NameAr: "برمجة الويب", Credits: 3, Prerequisites: []string{"ds350"}, Category: models.CategoryCore, Semester: 6},
			{ID: "ds363", Code: "DS363", Name: "Artificial Intelligence", NameAr: "الذكاء الاصطناعي", Credits: 3, Prerequisites: []string{"ds352"}, Category: models.CategoryCore, Semester: 6},
			{ID: "ds364", Code: "DS364", Name: "Data Curation (Management and Organization)", NameAr: "إدارة وتنظيم البيانات", Credits: 3, Prerequisites: []string{"ds350"}, Category: models.CategoryCore, Semester: 6},
			// Semester 7
			{ID: "ds470", Code: "DS470", Name: "Data Security and Privacy", NameAr: "أمن وخصوصية البيانات", Credits: 3, Prerequisites: []string{"ds364"}, Category: models.CategoryCore, Semester: 7},
			{ID: "ds471", Code: "DS471", Name: "Machine Learning", NameAr: "تعلم الآلة", Credits: 3, Prerequisites: []string{"ds363"}, Category: models.CategoryCore, Semester: 7},
			{ID: "ds472", Code: "DS472", Name: "Data Mining", NameAr: "تنقيب البيانات", Credits: 3, Prerequisites: []string{"ds364"}, Category: models.CategoryCore, Semester: 7},
			{ID: "ds473", Code: "DS473", Name: "Computer Vision", NameAr: "رؤية الحاسوب", Credits: 3, Prerequisites: []string{"ds363"}, Category: models.CategoryElective, Semester: 7},
			{ID: "ds474", Code: "DS474", Name: "Decision Support Systems", NameAr: "أنظمة دعم القرار", Credits: 3, Prerequisites: []string{"ds363"}, Category: models.CategoryElective, Semester: 7},
			{ID: "ds479", Code: "DS479", Name: "Senior Project 1", NameAr: "مشروع التخرج الأول", Credits: 3, Prerequisites: []string{"ds361", "ds362"}, Category: models.CategoryCore, Semester: 7},
			// Semester 8
			{ID: "ds480", Code: "DS480", Name: "Data Visualization", NameAr: "تصور البيانات", Credits: 3, Prerequisites: []string{"ds472"}, Category: models.CategoryCore, Semester: 8},
			{ID: "ds481", Code: "DS481", Name: "Professional Ethics in Data Science", NameAr: "الأخلاق المهنية في علم البيانات", Credits: 3, Category: models.CategoryCore, Semester: 8},
			{ID: "ds482", Code: "DS482", Name: "Deep Learning", NameAr: "التعلم العميق", Credits: 3, Prerequisites: []string{"ds471"}, Category: models.CategoryElective, Semester: 8},
			{ID: "ds483", Code: "DS483", Name: "Natural Language Processing", NameAr: "معالجة اللغة الطبيعية", Credits: 3, Prerequisites: []string{"ds471"}, Category: models.CategoryElective, Semester: 8},
			{ID: "ds489", Code: "DS489", Name: "Senior Project 2", NameAr: "مشروع التخرج الثاني", Credits: 3, Prerequisites: []string{"ds479"}, Category: models.CategoryCore, Semester: 8},
			{ID: "ds499", Code: "DS499", Name: "Practical Training", NameAr: "التدريب العملي", Credits: 3, Category: models.CategoryCore, HourRequirement: 86, Semester: 8},
		},
	}
}

func computerScience() *models.MajorProgram {
	return &models.MajorProgram{
		ID:                     "computer-science",
		Name:                   "Computer Science",
		NameAr:                 "علوم الحاسوب",
		TotalCredits:           130,
		UniversityRequirements: universityRequirements(),
		SharedFirstYearCourses: computingSharedCourses(
			models.Course{ID: "stat101", Code: "STAT101", Name: "Statistics", NameAr: "الإحصاء", Credits: 3, Category: models.CategoryCore},
		),
		Courses: []models.Course{
			// Semester 3
			{ID: "cs230", Code: "CS230", Name: "Object Oriented Programming", NameAr: "البرمجة الكائنية التوجه", Credits: 3, Category: models.CategoryCore, Semester: 3},
			{ID: "cs231", Code: "CS231", Name: "Digital Logic Design", NameAr: "تصميم المنطق الرقمي", Credits: 3, Category: models.CategoryCore, Semester: 3},
			// Semester 4
			{ID: "cs240", Code: "CS240", Name: "Data Structure", NameAr: "هياكل البيانات", Credits: 3, Prerequisites: []string{"cs230"}, Category: models.CategoryCore, Semester: 4},
			{ID: "cs241", Code: "CS241", Name: "Computer Architecture and Organization", NameAr: "معمارية وتنظيم الحاسوب", Credits: 3, Prerequisites: []string{"cs231"}, Category: models.CategoryCore, Semester: 4},
			{ID: "cs242", Code: "CS242", Name: "Theory of Computing", NameAr: "نظرية الحوسبة", Credits: 3, Prerequisites: []string{"cs230"}, Category: models.CategoryCore, Semester: 4},
			{ID: "cs243", Code: "CS243", Name: "Discrete Mathematics for CS", NameAr: "الرياضيات المتقطعة لعلوم الحاسوب", Credits: 3, Prerequisites: []string{"math150"}, Category: models.CategoryCore, Semester: 4},
			// Semester 5
			{ID: "cs350", Code: "CS350", Name: "Introduction to Database", NameAr: "مقدمة في قواعد البيانات", Credits: 3, Prerequisites: []string{"cs240"}, Category: models.CategoryCore, Semester: 5},
			{ID: "cs351", Code: "CS351", Name: "Operating Systems", NameAr: "أنظمة التشغيل", Credits: 3, Prerequisites: []string{"cs241"}, Category: models.CategoryCore, Semester: 5},
			{ID: "cs352", Code: "CS352", Name: "System Analysis and Design", NameAr: "تحليل وتصميم النظم", Credits: 3, Prerequisites: []string{"cs230"}, Category: models.CategoryCore, Semester: 5},
			{ID: "cs353", Code: "CS353", Name: "Design and Analysis of Algorithms", NameAr: "تصميم وتحليل الخوارزميات", Credits: 3, Prerequisites: []string{"cs240", "cs242"}, Category: models.CategoryCore, Semester: 5},
			// Semester 6
			{ID: "cs360", Code: "CS360", Name: "Computer Networks", NameAr: "شبكات الحاسوب", Credits: 3, Prerequisites: []string{"cs351"}, Category: models.CategoryCore, Semester: 6},
			{ID: "cs361", Code: "CS361", Name: "Web Programming", NameAr: "برمجة الويب", Credits: 3, Prerequisites: []string{"cs350"}, Category: models.CategoryCore, Semester: 6},
			{ID: "cs362", Code: "CS362", Name: "Artificial Intelligence", NameAr: "الذكاء الاصطناعي", Credits: 3, Prerequisites: []string{"cs353"}, Category: models.CategoryCore, Semester: 6},
			{ID: "cs363", Code: "CS363", Name: "Principles of Programming Languages", NameAr: "مبادئ لغات البرمجة", Credits: 3, Prerequisites: []string{"cs240"}, Category: models.CategoryCore, Semester: 6},
			{ID: "cs364", Code: "CS364", Name: "Computing Entrepreneurship and Innovation", NameAr: "ريادة الأعمال والابتكار في الحوسبة", Credits: 3, Prerequisites: []string{"cs350"}, Category: models.CategoryCore, Semester: 6},
			// Semester 7
			{ID: "cs470", Code: "CS470", Name: "Human Computer Interaction", NameAr: "التفاعل بين الإنسان والحاسوب", Credits: 3, Prerequisites: []string{"cs352"}, Category: models.CategoryCore, Semester: 7},
			{ID: "cs471", Code: "CS471", Name: "Computer Security", NameAr: "أمن الحاسوب", Credits: 3, Prerequisites: []string{"cs360"}, Category: models.CategoryCore, Semester: 7},
			{ID: "cs475", Code: "CS475", Name: "Mobile Computing", NameAr: "الحوسبة المتنقلة", Credits: 3, Prerequisites: []string{"cs363"}, Category: models.CategoryElective, Semester: 7},
			{ID: "cs476", Code: "CS476", Name: "Parallel and Distributed Computing", NameAr: "الحوسبة المتوازية والموزعة", Credits: 3, Prerequisites: []string{"cs363"}, Category: models.CategoryElective, Semester: 7},
			{ID: "cs479", Code: "CS479", Name: "Senior Project 1 in Computer Science", NameAr: "مشروع التخرج الأول في علوم الحاسوب", Credits: 3, Prerequisites: []string{"cs350", "cs352"}, Category: models.CategoryCore, Semester: 7},
			// Semester 8
			{ID: "cs477", Code: "CS477", Name: "Compiler Design", NameAr: "تصميم المترجمات", Credits: 3, Prerequisites: []string{"cs363"}, Category: models.CategoryElective, Semester: 8},
			{ID: "cs478", Code: "CS478", Name: "Computer Graphics", NameAr: "رسوميات الحاسوب", Credits: 3, Prerequisites: []string{"cs363"}, Category: models.CategoryElective, Semester: 8},
			{ID: "cs480", Code: "CS480", Name: "Project Management in Computing", NameAr: "إدارة المشاريع في الحوسبة", Credits: 3, Prerequisites: []string{"cs352"}, Category: models.CategoryCore, Semester: 8},
			{ID: "cs481", Code: "CS481", Name: "Professional Ethics in Computer Science", NameAr: "الأخلاق المهنية في علوم الحاسوب", Credits: 3, Category: models.CategoryCore, Semester: 8},
			{ID: "cs489", Code: "CS489", Name: "Senior Project 2 in Computer Science", NameAr: "مشروع التخرج الثاني في علوم الحاسوب", Credits: 3, Prerequisites: []string{"cs479"}, Category: models.CategoryCore, Semester: 8},
			{ID: "cs499", Code: "CS499", Name: "Practical Training", NameAr: "التدريب العملي", Credits: 3, Category: models.CategoryCore, HourRequirement: 86, Semester: 8},
		},
	}
}

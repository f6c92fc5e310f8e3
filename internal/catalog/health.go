package catalog

import "github.com/students-sa/planner-api/internal/models"

func healthInformatics() *models.MajorProgram {
	return &models.MajorProgram{
		ID:                     "health-informatics",
		Name:                   "Health Informatics",
		NameAr:                 "المعلوماتية الصحية",
		TotalCredits:           130,
		UniversityRequirements: universityRequirements(),
		SharedFirstYearCourses: islamicCourses(),
		Courses: []models.Course{
			// Semester 3
			{ID: "bio101", Code: "BIO101", Name: "Basic Medical Terminology", NameAr: "المصطلحات الطبية الأساسية", Credits: 3, Category: models.CategoryCore, Semester: 3},
			{ID: "hcm101", Code: "HCM101", Name: "Health Care Management", NameAr: "إدارة الرعاية الصحية", Credits: 3, Category: models.CategoryCore, Semester: 3},
			{ID: "hcm102", Code: "HCM102", Name: "Organizational Behavior", NameAr: "السلوك التنظيمي", Credits: 3, Category: models.CategoryCore, Semester: 3},
			{ID: "phc121", Code: "PHC121", Name: "Introduction to Biostatistics", NameAr: "مقدمة في الإحصاء الحيوي", Credits: 3, Category: models.CategoryCore, Semester: 3},
			{ID: "it231", Code: "IT231", Name: "Introduction to IT and IS", NameAr: "مقدمة في تقنية المعلومات ونظم المعلومات", Credits: 3, Category: models.CategoryCore, Semester: 3},
			{ID: "it232", Code: "IT232", Name: "Object Oriented Programming", NameAr: "البرمجة الكائنية التوجه", Credits: 3, Category: models.CategoryCore, Semester: 3},
			// Semester 4
			{ID: "bio102", Code: "BIO102", Name: "Introduction to Anatomy and Physiology", NameAr: "مقدمة في علم التشريح ووظائف الأعضاء", Credits: 3, Prerequisites: []string{"bio101"}, Category: models.CategoryCore, Semester: 4},
			{ID: "it244", Code: "IT244", Name: "Introduction to Database", NameAr: "مقدمة في قواعد البيانات", Credits: 3, Prerequisites: []string{"it232"}, Category: models.CategoryCore, Semester: 4},
			{ID: "it245", Code: "IT245", Name: "Data Structure", NameAr: "هياكل البيانات", Credits: 3, Prerequisites: []string{"it232"}, Category: models.CategoryCore, Semester: 4},
			{ID: "phc131", Code: "PHC131", Name: "Introduction to Epidemiology", NameAr: "مقدمة في علم الأوبئة", Credits: 3, Prerequisites: []string{"phc121"}, Category: models.CategoryCore, Semester: 4},
			{ID: "hcm113", Code: "HCM113", Name: "Health Policy & Saudi Healthcare System", NameAr: "السياسة الصحية ونظام الرعاية الصحية السعودي", Credits: 3, Prerequisites: []string{"hcm101"}, Category: models.CategoryCore, Semester: 4},
			// Semester 5
			{ID: "phc212", Code: "PHC212", Name: "Concepts of Health Education and Promotion", NameAr: "مفاهيم التثقيف الصحي والترويج", Credits: 3, Prerequisites: []string{"bio101"}, Category: models.CategoryCore, Semester: 5},
			{ID: "it351", Code: "IT351", Name: "Computer Networks", NameAr: "شبكات الحاسوب", Credits: 3, Prerequisites: []string{"it231"}, Category: models.CategoryCore, Semester: 5},
			{ID: "it352", Code: "IT352", Name: "Human Computer Interaction", NameAr: "التفاعل بين الإنسان والحاسوب", Credits: 3, Prerequisites: []string{"it231", "it245"}, Category: models.CategoryCore, Semester: 5},
			{ID: "hci111", Code: "HCI111", Name: "Introduction to Health Informatics", NameAr: "مقدمة في المعلوماتية الصحية", Credits: 3, Category: models.CategoryCore, Semester: 5},
			{ID: "it353", Code: "IT353", Name: "System Analysis and Design", NameAr: "تحليل وتصميم النظم", Credits: 3, Prerequisites: []string{"it245"}, Category: models.CategoryCore, Semester: 5},
			// Semester 6
			{ID: "hcm213", Code: "HCM213", Name: "Financial Management for Healthcare", NameAr: "الإدارة المالية للرعاية الصحية", Credits: 3, Prerequisites: []string{"hcm101"}, Category: models.CategoryCore, Semester: 6},
			{ID: "phc215", Code: "PHC215", Name: "Healthcare Research", NameAr: "بحوث الرعاية الصحية", Credits: 3, Prerequisites: []string{"phc131"}, Category: models.CategoryCore, Semester: 6},
			{ID: "it362", Code: "IT362", Name: "IT Project Management", NameAr: "إدارة مشاريع تقنية المعلومات", Credits: 3, Prerequisites: []string{"it353"}, Category: models.CategoryCore, Semester: 6},
			{ID: "phc216", Code: "PHC216", Name: "Ethics & Regulations in Healthcare", NameAr: "الأخلاق واللوائح في الرعاية الصحية", Credits: 3, Prerequisites: []string{"hcm113"}, Category: models.CategoryCore, Semester: 6},
			{ID: "hci112", Code: "HCI112", Name: "Electronic Health Records", NameAr: "السجلات الصحية الإلكترونية", Credits: 3, Prerequisites: []string{"hci111", "it231"}, Category: models.CategoryCore, Semester: 6},
			{ID: "it361", Code: "IT361", Name: "Web Technologies", NameAr: "تقنيات الويب", Credits: 3, Prerequisites: []string{"it352", "it244"}, Category: models.CategoryCore, Semester: 6},
			// Semester 7
			{ID: "it475", Code: "IT475", Name: "Decision Support Systems", NameAr: "أنظمة دعم القرار", Credits: 3, Prerequisites: []string{"it244"}, Category: models.CategoryCore, Semester: 7},
			{ID: "it476", Code: "IT476", Name: "IT Security & Policies", NameAr: "أمن تقنية المعلومات والسياسات", Credits: 3, Prerequisites: []string{"it351"}, Category: models.CategoryCore, Semester: 7},
			{ID: "hci214", Code: "HCI214", Name: "Consumer Health Informatics", NameAr: "معلوماتية صحة المستهلك", Credits: 3, Prerequisites: []string{"hci112"}, Category: models.CategoryCore, Semester: 7},
			{ID: "hci213", Code: "HCI213", Name: "Medical Coding and Billing", NameAr: "الترميز الطبي والفواتير", Credits: 3, Prerequisites: []string{"hci111", "hci112"}, Category: models.CategoryCore, Semester: 7},
			{ID: "phc312", Code: "PHC312", Name: "Health Communications", NameAr: "الاتصالات الصحية", Credits: 3, Prerequisites: []string{"phc216"}, Category: models.CategoryCore, Semester: 7},
			// Semester 8
			{ID: "hci315", Code: "HCI315", Name: "Telehealth and Telemedicine", NameAr: "الصحة عن بُعد والطب عن بُعد", Credits: 3, Prerequisites: []string{"hci213"}, Category: models.CategoryCore, Semester: 8},
			{ID: "hci316", Code: "HCI316", Name: "E-Health", NameAr: "الصحة الإلكترونية", Credits: 3, Prerequisites: []string{"hci214"}, Category: models.CategoryCore, Semester: 8},
			{ID: "hci314", Code: "HCI314", Name: "Public Health Informatics", NameAr: "معلوماتية الصحة العامة", Credits: 3, Prerequisites: []string{"hci213"}, Category: models.CategoryCore, Semester: 8},
			// Electives (student chooses 2)
			{ID: "it487", Code: "IT487", Name: "Mobile Application Development", NameAr: "تطوير تطبيقات الجوال", Credits: 3, Prerequisites: []string{"phc312", "hci213", "hci214"}, Category: models.CategoryElective, Semester: 8},
			{ID: "it364", Code: "IT364", Name: "IT Innovation and Entrepreneurship", NameAr: "الابتكار وريادة الأعمال في تقنية المعلومات", Credits: 3, Category: models.CategoryElective, Semester: 8},
			{ID: "it485", Code: "IT485", Name: "Professional Ethics in IT", NameAr: "الأخلاق المهنية في تقنية المعلومات", Credits: 3, Category: models.CategoryElective, Semester: 8},
			{ID: "ecom101", Code: "ECOM101", Name: "E-Commerce", NameAr: "التجارة الإلكترونية", Credits: 3, Category: models.CategoryElective, Semester: 8},
			{ID: "phc101", Code: "PHC101", Name: "Introduction to Public Health", NameAr: "مقدمة في الصحة العامة", Credits: 3, Category: models.CategoryElective, Semester: 8},
			{ID: "phc151", Code: "PHC151", Name: "Environmental Health", NameAr: "الصحة البيئية", Credits: 3, Category: models.CategoryElective, Semester: 8},
			{ID: "phc261", Code: "PHC261", Name: "Occupational Health", NameAr: "الصحة المهنية", Credits: 3, Category: models.CategoryElective, Semester: 8},
			{ID: "phc273", Code: "PHC273", Name: "Introduction to Mental Health", NameAr: "مقدمة في الصحة النفسية", Credits: 3, Category: models.CategoryElective, Semester: 8},
			{ID: "phc311", Code: "PHC311", Name: "Global Health", NameAr: "الصحة العالمية", Credits: 3, Category: models.CategoryElective, Semester: 8},
		},
	}
}

func publicHealth() *models.MajorProgram {
	return &models.MajorProgram{
		ID:                     "public-health",
		Name:                   "Public Health",
		NameAr:                 "الصحة العامة",
		TotalCredits:           130,
		UniversityRequirements: universityRequirements(),
		SharedFirstYearCourses: islamicCourses(),
		Courses: []models.Course{
			// Semester 3
			{ID: "biol101", Code: "BIOL 101", Name: "Basic Medical Terminology", NameAr: "المصطلحات الطبية الأساسية", Credits: 3, Category: models.CategoryCore, Semester: 3},
			{ID: "hcm101", Code: "HCM 101", Name: "Health Care Management", NameAr: "إدارة الرعاية الصحية", Credits: 3, Category: models.CategoryCore, Semester: 3},
			{ID: "hcm102", Code: "HCM 102", Name: "Organizational Behavior", NameAr: "السلوك التنظيمي", Credits: 3, Category: models.CategoryCore, Semester: 3},
			{ID: "phc121", Code: "PHC 121", Name: "Introduction to Biostatistics", NameAr: "مقدمة في الإحصاء الحيوي", Credits: 3, Category: models.CategoryCore, Semester: 3},
			{ID: "phc101", Code: "PHC 101", Name: "Introduction to Public Health", NameAr: "مقدمة في الصحة العامة", Credits: 3, Category: models.CategoryCore, Semester: 3},
			// Semester 4
			{ID: "biol102", Code: "BIOL 102", Name: "Introduction to Anatomy and Physiology", NameAr: "مقدمة في علم التشريح ووظائف الأعضاء", Credits: 3, Prerequisites: []string{"biol101"}, Category: models.CategoryCore, Semester: 4},
			{ID: "biol103", Code: "BIOL 103", Name: "Principles of Microbiology for Public Health", NameAr: "مبادئ علم الأحياء الدقيقة للصحة العامة", Credits: 3, Prerequisites: []string{"biol101"}, Category: models.CategoryCore, Semester: 4},
			{ID: "hcm113", Code: "HCM 113", Name: "Health Policy & Saudi Healthcare System", NameAr: "السياسة الصحية ونظام الرعاية الصحية السعودي", Credits: 3, Prerequisites: []string{"hcm101"}, Category: models.CategoryCore, Semester: 4},
			{ID: "phc131", Code: "PHC 131", Name: "Introduction to Epidemiology", NameAr: "مقدمة في علم الأوبئة", Credits: 3, Prerequisites: []string{"phc121"}, Category: models.CategoryCore, Semester: 4},
			{ID: "phc151", Code: "PHC 151", Name: "Environmental Health", NameAr: "الصحة البيئية", Credits: 3, Prerequisites: []string{"phc101"}, Category: models.CategoryCore, Semester: 4},
			{ID: "phc181", Code: "PHC 181", Name: "Sociology of Health, Illness and Healthcare", NameAr: "علم اجتماع الصحة والمرض والرعاية الصحية", Credits: 3, Category: models.CategoryCore, Semester: 4},
			// Semester 5
			{ID: "phc212", Code: "PHC 212", Name: "Concepts of Health Education and Promotion", NameAr: "مفاهيم التثقيف الصحي والترويج", Credits: 3, Prerequisites: []string{"biol101"}, Category: models.CategoryCore, Semester: 5},
			{ID: "phc241", Code: "PHC 241", Name: "Fundamental Concepts in Food and Nutrition", NameAr: "المفاهيم الأساسية في الغذاء والتغذية", Credits: 3, Prerequisites: []string{"phc101"}, Category: models.CategoryCore, Semester: 5},
			{ID: "phc261", Code: "PHC 261", Name: "Occupational Health", NameAr: "الصحة المهنية", Credits: 3, Prerequisites: []string{"phc151"}, Category: models.CategoryCore, Semester: 5},
			{ID: "phc271", Code: "PHC 271", Name: "Introduction to Disease", NameAr: "مقدمة في الأمراض", Credits: 3, Prerequisites: []string{"biol103"}, Category: models.CategoryCore, Semester: 5},
			{ID: "phc281", Code: "PHC 281", Name: "Health Behavior", NameAr: "السلوك الصحي", Credits: 3, Prerequisites: []string{"phc181"}, Category: models.CategoryCore, Semester: 5},
			// Semester 6
			{ID: "hcm213", Code: "HCM 213", Name: "Financial Management for Healthcare", NameAr: "الإدارة المالية للرعاية الصحية", Credits: 3, Prerequisites: []string{"hcm101"}, Category: models.CategoryCore, Semester: 6},
			{ID: "phc215", Code: "PHC 215", Name: "Healthcare Research Methods and Analysis", NameAr: "طرق وتحليل البحوث الصحية", Credits: 3, Prerequisites: []string{"phc131"}, Category: models.CategoryCore, Semester: 6},
			{ID: "phc216", Code: "PHC 216", Name: "Ethics and Regulation in Health Care", NameAr: "الأخلاق واللوائح في الرعاية الصحية", Credits: 3, Prerequisites: []string{"hcm113"}, Category: models.CategoryCore, Semester: 6},
			{ID: "phc231", Code: "PHC 231", Name: "Introduction to Hospital Epidemiology", NameAr: "مقدمة في علم الأوبئة المستشفيات", Credits: 3, Prerequisites: []string{"phc131"}, Category: models.CategoryCore, Semester: 6},
			{ID: "phc273", Code: "PHC 273", Name: "Introduction to Mental Health", NameAr: "مقدمة في الصحة النفسية", Credits: 3, Prerequisites: []string{"phc281"}, Category: models.CategoryCore, Semester: 6},
			{ID: "phc274", Code: "PHC 274", Name: "Health Planning", NameAr: "التخطيط الصحي", Credits: 3, Prerequisites: []string{"phc212"}, Category: models.CategoryCore, Semester: 6},
			// Semester 7
			{ID: "phc311", Code: "PHC 311", Name: "Global Health", NameAr: "الصحة العالمية", Credits: 3, Prerequisites: []string{"phc101"}, Category: models.CategoryCore, Semester: 7},
			{ID: "phc312", Code: "PHC 312", Name: "Health Communication", NameAr: "الاتصال الصحي", Credits: 3, Prerequisites: []string{"phc216"}, Category: models.CategoryCore, Semester: 7},
			{ID: "phc313", Code: "PHC 313", Name: "Road Traffic Injuries and Disability Prevention", NameAr: "إصابات حوادث المرور ومنع الإعاقة", Credits: 3, Prerequisites: []string{"phc281"}, Category: models.CategoryCore, Semester: 7},
			{ID: "phc331", Code: "PHC 331", Name: "Chronic Disease Epidemiology and Prevention", NameAr: "علم أوبئة الأمراض المزمنة والوقاية", Credits: 3, Prerequisites: []string{"phc131"}, Category: models.CategoryCore, Semester: 7},
			{ID: "phc372", Code: "PHC 372", Name: "Public Health Outbreak and Disaster Management", NameAr: "إدارة تفشي الأمراض والكوارث الصحية العامة", Credits: 3, Prerequisites: []string{"phc231"}, Category: models.CategoryCore, Semester: 7},
			{ID: "phc373", Code: "PHC 373", Name: "Maternal and Child Health", NameAr: "صحة الأم والطفل", Credits: 3, Prerequisites: []string{"phc271", "phc281"}, Category: models.CategoryCore, Semester: 7},
			// Semester 8
			{ID: "phc374", Code: "PHC 374", Name: "Oral Health Promotion", NameAr: "تعزيز صحة الفم", Credits: 3, Prerequisites: []string{"phc281", "phc212"}, Category: models.CategoryCore, Semester: 8},
			{ID: "phc314", Code: "PHC 314", Name: "Society and Addiction", NameAr: "المجتمع والإدمان", Credits: 3, Prerequisites: []string{"phc312", "phc273"}, Category: models.CategoryCore, Semester: 8},
			// Track 1: Epidemiology and Biostatistics
			{ID: "phc321", Code: "PHC 321", Name: "Applied Biostatistics", NameAr: "الإحصاء الحيوي التطبيقي", Credits: 3, Category: models.CategoryElective, Semester: 8},
			{ID: "phc332", Code: "PHC 332", Name: "Advanced Epidemiology", NameAr: "علم الأوبئة المتقدم", Credits: 3, Category: models.CategoryElective, Semester: 8},
			{ID: "phc335", Code: "PHC 335", Name: "Cancer Risk and Prevention", NameAr: "مخاطر السرطان والوقاية", Credits: 3, Category: models.CategoryElective, Semester: 8},
			// Track 2: Environmental and Occupational Health
			{ID: "phc351", Code: "PHC 351", Name: "Health and Environmental Risk Assessment", NameAr: "تقييم المخاطر الصحية والبيئية", Credits: 3, Category: models.CategoryElective, Semester: 8},
			{ID: "phc361", Code: "PHC 361", Name: "Safety Fundamentals", NameAr: "أساسيات السلامة", Credits: 3, Category: models.CategoryElective, Semester: 8},
			{ID: "phc362", Code: "PHC 362", Name: "Workplace Health Promotion", NameAr: "تعزيز الصحة في مكان العمل", Credits: 3, Category: models.CategoryElective, Semester: 8},
			// Track 3: Health Education and Promotion
			{ID: "phc315", Code: "PHC 315", Name: "Public Health Program Evaluation", NameAr: "تقييم برامج الصحة العامة", Credits: 3, Category: models.CategoryElective, Semester: 8},
			{ID: "phc375", Code: "PHC 375", Name: "Promoting Physical Activity and Health", NameAr: "تعزيز النشاط البدني والصحة", Credits: 3, Category: models.CategoryElective, Semester: 8},
			{ID: "phc376", Code: "PHC 376", Name: "Health Promotion and Later Life", NameAr: "تعزيز الصحة والحياة المتأخرة", Credits: 3, Category: models.CategoryElective, Semester: 8},
		},
	}
}

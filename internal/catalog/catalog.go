// Package catalog holds the static definition of colleges, majors and
// their course groups. The catalog is built once at process start and
// never mutated; callers receive shared references and must treat them
// as read-only.
package catalog

import (
	"sort"

	"github.com/students-sa/planner-api/internal/models"
)

var programs = map[string]*models.MajorProgram{
	"information-technology": informationTechnology(),
	"data-science":           dataScience(),
	"computer-science":       computerScience(),
	"health-informatics":     healthInformatics(),
	"public-health":          publicHealth(),
	"management":             management(),
}

// Program returns the major program registered under the slug.
func Program(slug string) (*models.MajorProgram, bool) {
	p, ok := programs[slug]
	return p, ok
}

// Majors lists every registered major sorted by slug.
func Majors() []models.MajorRef {
	refs := make([]models.MajorRef, 0, len(programs))
	for slug, p := range programs {
		refs = append(refs, models.MajorRef{Slug: slug, Name: p.Name, NameAr: p.NameAr})
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Slug < refs[j].Slug })
	return refs
}

// colleges lists every college with its majors in display order. Some
// majors are listed without a registered program yet; Program returns
// false for those slugs.
var colleges = []models.College{
	{
		Slug:   "administrative-and-financial-sciences",
		Name:   "College of Administrative and Financial Sciences",
		NameAr: "كلية العلوم الإدارية والمالية",
		Majors: []models.MajorRef{
			{Slug: "management", Name: "Management", NameAr: "الإدارة"},
			{Slug: "e-commerce", Name: "E-Commerce", NameAr: "التجارة الإلكترونية"},
			{Slug: "accounting", Name: "Accounting", NameAr: "المحاسبة"},
			{Slug: "finance", Name: "Finance", NameAr: "التمويل"},
		},
	},
	{
		Slug:   "computing-and-informatics",
		Name:   "College of Computing and Informatics",
		NameAr: "كلية الحاسب والمعلوماتية",
		Majors: []models.MajorRef{
			{Slug: "computer-science", Name: "Computer Science", NameAr: "علوم الحاسب"},
			{Slug: "data-science", Name: "Data Science", NameAr: "علوم البيانات"},
			{Slug: "information-technology", Name: "Information Technology", NameAr: "تقنية المعلومات"},
		},
	},
	{
		Slug:   "health-sciences",
		Name:   "College of Health Sciences",
		NameAr: "كلية العلوم الصحية",
		Majors: []models.MajorRef{
			{Slug: "health-informatics", Name: "Health Informatics", NameAr: "المعلوماتية الصحية"},
			{Slug: "public-health", Name: "Public Health", NameAr: "الصحة العامة"},
		},
	},
	{
		Slug:   "science-and-theoretical-studies",
		Name:   "College of Science and Theoretical Studies",
		NameAr: "كلية العلوم والدراسات النظرية",
		Majors: []models.MajorRef{
			{Slug: "law", Name: "Law", NameAr: "القانون"},
			{Slug: "digital-media", Name: "Digital Media", NameAr: "الإعلام الرقمي"},
			{Slug: "english-language-and-translation", Name: "English Language and Translation", NameAr: "اللغة الإنجليزية والترجمة"},
		},
	},
}

// Colleges returns the full college listing.
func Colleges() []models.College {
	return colleges
}

// universityRequirements is the common first year shared by every
// college: six university-requirement courses with no prerequisites.
func universityRequirements() []models.Course {
	return []models.Course{
		{ID: "eng001", Code: "ENG001", Name: "English Skills 1", NameAr: "مهارات اللغة الإنجليزية 1", Credits: 8, Category: models.CategoryGeneral},
		{ID: "eng002", Code: "ENG002", Name: "English Skills 2", NameAr: "مهارات اللغة الإنجليزية 2", Credits: 8, Category: models.CategoryGeneral},
		{ID: "cs001", Code: "CS001", Name: "Computer Essentials", NameAr: "أساسيات الحاسوب", Credits: 3, Category: models.CategoryGeneral},
		{ID: "math001", Code: "MATH001", Name: "Fundamentals of Mathematics", NameAr: "أساسيات الرياضيات", Credits: 3, Category: models.CategoryGeneral},
		{ID: "comm001", Code: "COMM001", Name: "Communication Skills", NameAr: "مهارات التواصل", Credits: 2, Category: models.CategoryGeneral},
		{ID: "ci001", Code: "CI001", Name: "Academic Skills", NameAr: "المهارات الأكاديمية", Credits: 2, Category: models.CategoryGeneral},
	}
}

// islamicCourses are the four chained Islamic-studies courses shared
// by every college's first-year group.
func islamicCourses() []models.Course {
	return []models.Course{
		{ID: "islm101", Code: "ISLM101", Name: "Islamic Course 1", NameAr: "المقرر الإسلامي 1", Credits: 2, Category: models.CategoryGeneral},
		{ID: "islm102", Code: "ISLM102", Name: "Islamic Course 2", NameAr: "المقرر الإسلامي 2", Credits: 2, Category: models.CategoryGeneral},
		{ID: "islm103", Code: "ISLM103", Name: "Islamic Course 3", NameAr: "المقرر الإسلامي 3", Credits: 2, Prerequisites: []string{"islm101"}, Category: models.CategoryGeneral},
		{ID: "islm104", Code: "ISLM104", Name: "Islamic Course 4", NameAr: "المقرر الإسلامي 4", Credits: 2, Prerequisites: []string{"islm102"}, Category: models.CategoryGeneral},
	}
}

// computingSharedCourses is the ten-course shared group of the
// computing college. statsCourse differs per major (STAT101 for IT and
// CS, STAT201 for DS).
func computingSharedCourses(statsCourse models.Course) []models.Course {
	shared := islamicCourses()
	shared = append(shared,
		models.Course{ID: "sci101", Code: "SCI101", Name: "General Physics 1", NameAr: "الفيزياء العامة 1", Credits: 3, Category: models.CategoryCore},
		models.Course{ID: "sci201", Code: "SCI201", Name: "General Physics 2", NameAr: "الفيزياء العامة 2", Credits: 3, Prerequisites: []string{"sci101"}, Category: models.CategoryCore},
		models.Course{ID: "math150", Code: "MATH150", Name: "Discrete Mathematics", NameAr: "الرياضيات المتقطعة", Credits: 3, Category: models.CategoryCore},
		models.Course{ID: "math251", Code: "MATH251", Name: "Linear Algebra", NameAr: "الجبر الخطي", Credits: 3, Prerequisites: []string{"math150"}, Category: models.CategoryCore},
		models.Course{ID: "eng103", Code: "ENG103", Name: "Technical Writing", NameAr: "الكتابة التقنية", Credits: 3, Category: models.CategoryCore},
		statsCourse,
	)
	return shared
}

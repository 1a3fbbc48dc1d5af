package model

// Types for the resume document as it is edited and persisted. List fields
// are always non-nil after EnsureDefaults; entry IDs are assigned by the
// remote store and are stripped from outgoing payloads by the normalizers.

type PersonalDetail struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	JobTitle     string `json:"jobTitle"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	LinkedinURL  string `json:"linkedinUrl,omitempty"`
	GithubURL    string `json:"githubUrl,omitempty"`
	PortfolioURL string `json:"portfolioUrl,omitempty"`
}

type Experience struct {
	ID               string `json:"id,omitempty"`
	Title            string `json:"title"`
	CompanyName      string `json:"companyName"`
	City             string `json:"city"`
	State            string `json:"state"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	CurrentlyWorking bool   `json:"currentlyWorking,omitempty"`
	WorkSummary      string `json:"workSummary"`
}

type Education struct {
	ID             string `json:"id,omitempty"`
	UniversityName string `json:"universityName"`
	Degree         string `json:"degree"`
	Major          string `json:"major"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	Description    string `json:"description"`
}

type Skill struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Rating   int    `json:"rating"`
	Category string `json:"category,omitempty"`
}

type Project struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	IsPresent   bool   `json:"isPresent,omitempty"`
}

// SectionKind identifies the optional named sections. Custom sections carry
// a user-chosen title; the standard kinds have fixed default titles.
type SectionKind string

const (
	SectionHighlights   SectionKind = "highlights"
	SectionAchievements SectionKind = "achievements"
	SectionDeclaration  SectionKind = "declaration"
	SectionCustom       SectionKind = "custom"
)

// BodyKind selects which representation a section body uses.
type BodyKind string

const (
	BodyText  BodyKind = "text"
	BodyRich  BodyKind = "rich"
	BodyItems BodyKind = "items"
)

type SectionItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type SectionBody struct {
	Kind  BodyKind      `json:"kind"`
	Text  string        `json:"text,omitempty"`
	Items []SectionItem `json:"items,omitempty"`
}

// Section is one optional named section. The resume holds an explicit
// ordered list of active sections rather than inferring them from map keys.
type Section struct {
	Kind  SectionKind `json:"kind"`
	Title string      `json:"title"`
	Body  SectionBody `json:"body"`
}

type Resume struct {
	Title      string `json:"title"`
	ThemeColor string `json:"themeColor,omitempty"`
	PersonalDetail
	Summary    string       `json:"summary"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Skills     []Skill      `json:"skills"`
	Projects   []Project    `json:"projects"`
	Sections   []Section    `json:"sections"`
}

// EnsureDefaults replaces nil list fields with empty slices so decoded
// records never expose null lists.
func (r *Resume) EnsureDefaults() {
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Skills == nil {
		r.Skills = []Skill{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	if r.Sections == nil {
		r.Sections = []Section{}
	}
}

// Clone returns a deep copy. Editors and the shared context exchange copies
// so a draft mutation never aliases context-owned slices.
func (r Resume) Clone() Resume {
	out := r
	out.Experience = append([]Experience(nil), r.Experience...)
	out.Education = append([]Education(nil), r.Education...)
	out.Skills = append([]Skill(nil), r.Skills...)
	out.Projects = append([]Project(nil), r.Projects...)
	out.Sections = make([]Section, len(r.Sections))
	for i, s := range r.Sections {
		cp := s
		cp.Body.Items = append([]SectionItem(nil), s.Body.Items...)
		out.Sections[i] = cp
	}
	out.EnsureDefaults()
	return out
}

// SectionByKind returns the first active section of the given kind, or nil.
// Custom sections are addressed by title instead.
func (r *Resume) SectionByKind(kind SectionKind) *Section {
	for i := range r.Sections {
		if r.Sections[i].Kind == kind {
			return &r.Sections[i]
		}
	}
	return nil
}

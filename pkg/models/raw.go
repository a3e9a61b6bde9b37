package models

// RawResumeDocument is the loosely-structured document returned by the AI
// parsing/enhancement collaborator. Keys are the human-readable section names the
// model emits; any key may be absent, so every field tolerates its zero value.
// This is a versioned input contract: if the collaborator's output shape changes,
// this file and the normalizer's mapping table are the only places to update.
type RawResumeDocument struct {
	PersonalInfo   *RawPersonalInfo   `json:"Personal Information,omitempty"`
	WorkExperience []RawExperience    `json:"Work Experience,omitempty"`
	Education      []RawEducation     `json:"Education,omitempty"`
	Skills         *RawSkills         `json:"Skills,omitempty"`
	Projects       []RawProject       `json:"Projects,omitempty"`
	Certifications []RawCertification `json:"Certifications,omitempty"`
	Languages      []Language         `json:"languages,omitempty"`
	Awards         []Award            `json:"awards,omitempty"`
}

// RawPersonalInfo carries the contact block plus the summary, which the raw shape
// nests under "Personal Information" rather than at top level.
type RawPersonalInfo struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// RawExperience uses a single Dates string ("Jan 2020 – Present") and a single
// free-text responsibilities blob; bullets are not pre-split at this stage.
type RawExperience struct {
	Company          string `json:"company,omitempty"`
	Position         string `json:"position,omitempty"`
	Dates            string `json:"dates,omitempty"`
	Responsibilities string `json:"responsibilities,omitempty"`
}

type RawEducation struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Dates       string `json:"dates,omitempty"`
}

// RawSkills subdivides into technical and soft skill name lists
type RawSkills struct {
	Technical []string `json:"Technical Skills,omitempty"`
	Soft      []string `json:"Soft Skills,omitempty"`
}

type RawProject struct {
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// RawCertification's Details field doubles as the issue date in the collaborator's
// current output; the normalizer maps it through as-is.
type RawCertification struct {
	Name    string `json:"name,omitempty"`
	Issuer  string `json:"issuer,omitempty"`
	Details string `json:"details,omitempty"`
}

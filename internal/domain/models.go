package domain

// Domain contains the collection API records. Field tags follow the wire
// names the API emits, including its mixed-case URL suffixes.

// ObjectSummaryIndex is the identifier catalog returned by /objects.
// len(ObjectIDs) is not guaranteed to equal Total.
type ObjectSummaryIndex struct {
	Total     int   `json:"total" yaml:"total"`
	ObjectIDs []int `json:"objectIDs" yaml:"objectIDs"`
}

// MuseumObject describes a single artwork record.
type MuseumObject struct {
	ObjectID              int           `json:"objectID" yaml:"objectID"`
	IsHighlight           bool          `json:"isHighlight" yaml:"isHighlight"`
	AccessionNumber       string        `json:"accessionNumber" yaml:"accessionNumber"`
	AccessionYear         string        `json:"accessionYear" yaml:"accessionYear"`
	IsPublicDomain        bool          `json:"isPublicDomain" yaml:"isPublicDomain"`
	PrimaryImage          string        `json:"primaryImage" yaml:"primaryImage"`
	PrimaryImageSmall     string        `json:"primaryImageSmall" yaml:"primaryImageSmall"`
	AdditionalImages      []string      `json:"additionalImages" yaml:"additionalImages"`
	Constituents          []Constituent `json:"constituents" yaml:"constituents"`
	Department            string        `json:"department" yaml:"department"`
	ObjectName            string        `json:"objectName" yaml:"objectName"`
	Title                 string        `json:"title" yaml:"title"`
	Culture               string        `json:"culture" yaml:"culture"`
	Period                string        `json:"period" yaml:"period"`
	Dynasty               *string       `json:"dynasty,omitempty" yaml:"dynasty,omitempty"`
	Reign                 *string       `json:"reign,omitempty" yaml:"reign,omitempty"`
	Portfolio             *string       `json:"portfolio,omitempty" yaml:"portfolio,omitempty"`
	ArtistRole            string        `json:"artistRole" yaml:"artistRole"`
	ArtistPrefix          *string       `json:"artistPrefix,omitempty" yaml:"artistPrefix,omitempty"`
	ArtistDisplayName     string        `json:"artistDisplayName" yaml:"artistDisplayName"`
	ArtistDisplayBio      string        `json:"artistDisplayBio" yaml:"artistDisplayBio"`
	ArtistSuffix          *string       `json:"artistSuffix,omitempty" yaml:"artistSuffix,omitempty"`
	ArtistAlphaSort       string        `json:"artistAlphaSort" yaml:"artistAlphaSort"`
	ArtistNationality     string        `json:"artistNationality" yaml:"artistNationality"`
	ArtistBeginDate       string        `json:"artistBeginDate" yaml:"artistBeginDate"`
	ArtistEndDate         string        `json:"artistEndDate" yaml:"artistEndDate"`
	ArtistGender          string        `json:"artistGender" yaml:"artistGender"`
	ArtistWikidataURL     string        `json:"artistWikidata_URL" yaml:"artistWikidata_URL"`
	ArtistULANURL         string        `json:"artistULAN_URL" yaml:"artistULAN_URL"`
	ObjectDate            string        `json:"objectDate" yaml:"objectDate"`
	ObjectBeginDate       int           `json:"objectBeginDate" yaml:"objectBeginDate"`
	ObjectEndDate         int           `json:"objectEndDate" yaml:"objectEndDate"`
	Medium                string        `json:"medium" yaml:"medium"`
	Dimensions            string        `json:"dimensions" yaml:"dimensions"`
	Measurements          []Measurement `json:"measurements" yaml:"measurements"`
	CreditLine            string        `json:"creditLine" yaml:"creditLine"`
	GeographyType         *string       `json:"geographyType,omitempty" yaml:"geographyType,omitempty"`
	City                  *string       `json:"city,omitempty" yaml:"city,omitempty"`
	State                 *string       `json:"state,omitempty" yaml:"state,omitempty"`
	County                *string       `json:"county,omitempty" yaml:"county,omitempty"`
	Country               *string       `json:"country,omitempty" yaml:"country,omitempty"`
	Region                *string       `json:"region,omitempty" yaml:"region,omitempty"`
	Subregion             *string       `json:"subregion,omitempty" yaml:"subregion,omitempty"`
	Locale                *string       `json:"locale,omitempty" yaml:"locale,omitempty"`
	Locus                 *string       `json:"locus,omitempty" yaml:"locus,omitempty"`
	Excavation            *string       `json:"excavation,omitempty" yaml:"excavation,omitempty"`
	River                 *string       `json:"river,omitempty" yaml:"river,omitempty"`
	Classification        string        `json:"classification" yaml:"classification"`
	RightsAndReproduction string        `json:"rightsAndReproduction" yaml:"rightsAndReproduction"`
	LinkResource          string        `json:"linkResource" yaml:"linkResource"`
	MetadataDate          string        `json:"metadataDate" yaml:"metadataDate"`
	Repository            string        `json:"repository" yaml:"repository"`
	ObjectURL             string        `json:"objectURL" yaml:"objectURL"`
	Tags                  []Tag         `json:"tags,omitempty" yaml:"tags,omitempty"`
	ObjectWikidataURL     string        `json:"objectWikidata_URL" yaml:"objectWikidata_URL"`
	IsTimelineWork        bool          `json:"isTimelineWork" yaml:"isTimelineWork"`
	GalleryNumber         *string       `json:"GalleryNumber,omitempty" yaml:"GalleryNumber,omitempty"`
}

// Constituent is a person or workshop credited on an object.
type Constituent struct {
	ID          int    `json:"constituentID" yaml:"constituentID"`
	Role        string `json:"role" yaml:"role"`
	Name        string `json:"name" yaml:"name"`
	ULANURL     string `json:"constituentULAN_URL" yaml:"constituentULAN_URL"`
	WikidataURL string `json:"constituentWikidata_URL" yaml:"constituentWikidata_URL"`
	Gender      string `json:"gender" yaml:"gender"`
}

// Measurement holds one measured element, keyed by dimension name.
type Measurement struct {
	ElementName        string             `json:"elementName" yaml:"elementName"`
	ElementDescription *string            `json:"elementDescription" yaml:"elementDescription"`
	ElementValues      map[string]float64 `json:"elementMeasurements" yaml:"elementMeasurements"`
}

// Tag is a subject keyword with its vocabulary links.
type Tag struct {
	Term        string `json:"term" yaml:"term"`
	AATURL      string `json:"AAT_URL" yaml:"AAT_URL"`
	WikidataURL string `json:"Wikidata_URL" yaml:"Wikidata_URL"`
}

// DepartmentCatalog is the response of /departments.
type DepartmentCatalog struct {
	Departments []Department `json:"departments" yaml:"departments"`
}

// Department is a curatorial division.
type Department struct {
	ID          int    `json:"departmentId" yaml:"departmentId"`
	DisplayName string `json:"displayName" yaml:"displayName"`
}

// PageMeta is the Open Graph metadata scraped from an object's public page.
type PageMeta struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	ImageURL    string `json:"image_url" yaml:"image_url"`
}

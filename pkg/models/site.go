package models

// Project is one card in the project showcase grid
type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	GitHub      string   `yaml:"github"`
	Live        string   `yaml:"live"`
	Accent      string   `yaml:"accent"`
	Status      string   `yaml:"status"`
}

// TechBadge is one entry of the scrolling technology marquee
type TechBadge struct {
	Name  string `yaml:"name"`
	Icon  string `yaml:"icon"`
	Color string `yaml:"color"`
}

// TerminalLine is revealed in the hero terminal after Delay milliseconds
type TerminalLine struct {
	Text  string `yaml:"text"`
	Delay int    `yaml:"delay"`
}

type NavLink struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type InfoItem struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type SocialLink struct {
	Name   string `yaml:"name"`
	Handle string `yaml:"handle"`
	Href   string `yaml:"href"`
	Color  string `yaml:"color"`
}

// Hero holds the banner copy above the terminal
type Hero struct {
	Eyebrow   string `yaml:"eyebrow"`
	Prefix    string `yaml:"prefix"`
	Highlight string `yaml:"highlight"`
	Suffix    string `yaml:"suffix"`
	Subtitle  string `yaml:"subtitle"`
	Terminal  string `yaml:"terminal_title"`
}

// Site is everything the page renders besides the contact form state
type Site struct {
	Title     string         `yaml:"title"`
	Logo      string         `yaml:"logo"`
	Hero      Hero           `yaml:"hero"`
	Nav       []NavLink      `yaml:"nav"`
	Terminal  []TerminalLine `yaml:"terminal"`
	Stack     []TechBadge    `yaml:"stack"`
	Projects  []Project      `yaml:"projects"`
	QuickInfo []InfoItem     `yaml:"quick_info"`
	Socials   []SocialLink   `yaml:"socials"`
	Footer    string         `yaml:"footer"`
	Year      string         `yaml:"footer_year"`
}

// Package content carries the static copy of the site: navigation, hero,
// about, contact channels, footer and the long-form legal pages.
package content

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed site.yml
var siteDoc []byte

//go:embed privacy.md
var privacyDoc string

// Icon names a glyph. The presentation layer decides how to draw it.
type Icon string

const (
	IconBriefcase  Icon = "briefcase"
	IconUser       Icon = "user"
	IconUsers      Icon = "users"
	IconBuilding   Icon = "building"
	IconShield     Icon = "shield"
	IconTrendingUp Icon = "trending-up"
	IconTarget     Icon = "target"
	IconGlobe      Icon = "globe"
	IconZap        Icon = "zap"
	IconHeart      Icon = "heart"
	IconLightbulb  Icon = "lightbulb"
	IconAward      Icon = "award"
	IconMail       Icon = "mail"
	IconPhone      Icon = "phone"
	IconMapPin     Icon = "map-pin"
	IconClock      Icon = "clock"
	IconGithub     Icon = "github"
	IconTwitter    Icon = "twitter"
	IconLinkedin   Icon = "linkedin"
	IconInstagram  Icon = "instagram"
)

type NavItem struct {
	Name string `yaml:"name" json:"name"`
	Href string `yaml:"href" json:"href"`
	Icon Icon   `yaml:"icon" json:"icon"`
}

type Stat struct {
	Icon  Icon   `yaml:"icon" json:"icon"`
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

type Card struct {
	Icon        Icon   `yaml:"icon" json:"icon"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

type Channel struct {
	Icon        Icon   `yaml:"icon" json:"icon"`
	Title       string `yaml:"title" json:"title"`
	Detail      string `yaml:"detail" json:"detail"`
	Description string `yaml:"description" json:"description"`
}

type LinkSection struct {
	Title string   `yaml:"title" json:"title"`
	Links []string `yaml:"links" json:"links"`
}

type Social struct {
	Icon  Icon   `yaml:"icon" json:"icon"`
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
}

type Step struct {
	Title  string `yaml:"title" json:"title"`
	Detail string `yaml:"detail" json:"detail"`
}

type Site struct {
	Brand   string    `yaml:"brand" json:"brand"`
	Tagline string    `yaml:"tagline" json:"tagline"`
	Nav     []NavItem `yaml:"nav" json:"nav"`

	Hero struct {
		Heading           string `yaml:"heading" json:"heading"`
		Highlight         string `yaml:"highlight" json:"highlight"`
		Lead              string `yaml:"lead" json:"lead"`
		SearchPlaceholder string `yaml:"search_placeholder" json:"search_placeholder"`
		Stats             []Stat `yaml:"stats" json:"stats"`
	} `yaml:"hero" json:"hero"`

	About struct {
		Intro    string `yaml:"intro" json:"intro"`
		Stats    []Stat `yaml:"stats" json:"stats"`
		Features []Card `yaml:"features" json:"features"`
		Values   []Card `yaml:"values" json:"values"`
	} `yaml:"about" json:"about"`

	Contact struct {
		Lead     string    `yaml:"lead" json:"lead"`
		Channels []Channel `yaml:"channels" json:"channels"`
	} `yaml:"contact" json:"contact"`

	Footer struct {
		Email     string        `yaml:"email" json:"email"`
		Phone     string        `yaml:"phone" json:"phone"`
		Address   string        `yaml:"address" json:"address"`
		Copyright string        `yaml:"copyright" json:"copyright"`
		Sections  []LinkSection `yaml:"sections" json:"sections"`
		Socials   []Social      `yaml:"socials" json:"socials"`
	} `yaml:"footer" json:"footer"`

	DeleteAccount struct {
		Intro        string   `yaml:"intro" json:"intro"`
		Steps        []Step   `yaml:"steps" json:"steps"`
		Notes        []string `yaml:"notes" json:"notes"`
		SupportEmail string   `yaml:"support_email" json:"support_email"`
	} `yaml:"delete_account" json:"delete_account"`
}

var (
	siteOnce sync.Once
	site     Site
	siteErr  error
)

// Default returns the site copy compiled into the binary.
func Default() (Site, error) {
	siteOnce.Do(func() {
		site, siteErr = Parse(siteDoc)
	})
	return site, siteErr
}

func Parse(b []byte) (Site, error) {
	var s Site
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Site{}, fmt.Errorf("decode site content: %w", err)
	}
	return s, nil
}

// PrivacyPolicy returns the privacy policy source text.
func PrivacyPolicy() string {
	return privacyDoc
}

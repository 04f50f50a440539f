package web

import "naukariwala-site/internal/content"

var glyphs = map[content.Icon]string{
	content.IconBriefcase:  "💼",
	content.IconUser:       "👤",
	content.IconUsers:      "👥",
	content.IconBuilding:   "🏢",
	content.IconShield:     "🛡️",
	content.IconTrendingUp: "📈",
	content.IconTarget:     "🎯",
	content.IconGlobe:      "🌐",
	content.IconZap:        "⚡",
	content.IconHeart:      "❤️",
	content.IconLightbulb:  "💡",
	content.IconAward:      "🏆",
	content.IconMail:       "✉️",
	content.IconPhone:      "📞",
	content.IconMapPin:     "📍",
	content.IconClock:      "🕒",
	content.IconGithub:     "GH",
	content.IconTwitter:    "X",
	content.IconLinkedin:   "in",
	content.IconInstagram:  "IG",
}

// Glyph draws an icon. Unknown icons render as a bullet.
func Glyph(i content.Icon) string {
	if g, ok := glyphs[i]; ok {
		return g
	}
	return "•"
}

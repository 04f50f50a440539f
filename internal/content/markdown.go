package content

import "strings"

// BlockKind is what a single source line renders as.
type BlockKind string

const (
	BlockHeading    BlockKind = "h1"
	BlockSubheading BlockKind = "h2"
	BlockListItem   BlockKind = "li"
	BlockBold       BlockKind = "strong"
	BlockParagraph  BlockKind = "p"
	BlockSpacer     BlockKind = "br"
)

type Block struct {
	Kind BlockKind `json:"kind"`
	Text string    `json:"text,omitempty"`
}

// RenderLines applies the line-prefix convention used for the legal pages.
// It is not markdown: only "# ", "## ", "- " and whole-line "**bold**" are
// recognised, anything else is kept as literal text. A bold line needs text
// between its markers, so a bare "**" or "***" stays a literal paragraph.
func RenderLines(src string) []Block {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	lines := strings.Split(src, "\n")

	out := make([]Block, 0, len(lines))
	for _, line := range lines {
		out = append(out, renderLine(line))
	}
	return trimSpacers(out)
}

func renderLine(line string) Block {
	switch {
	case strings.TrimSpace(line) == "":
		return Block{Kind: BlockSpacer}
	case strings.HasPrefix(line, "# "):
		return Block{Kind: BlockHeading, Text: strings.TrimPrefix(line, "# ")}
	case strings.HasPrefix(line, "## "):
		return Block{Kind: BlockSubheading, Text: strings.TrimPrefix(line, "## ")}
	case strings.HasPrefix(line, "- "):
		return Block{Kind: BlockListItem, Text: strings.TrimPrefix(line, "- ")}
	case len(line) >= 4 && strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**"):
		return Block{Kind: BlockBold, Text: strings.ReplaceAll(line, "**", "")}
	default:
		return Block{Kind: BlockParagraph, Text: line}
	}
}

// Leading and trailing blank lines carry no meaning.
func trimSpacers(bs []Block) []Block {
	start, end := 0, len(bs)
	for start < end && bs[start].Kind == BlockSpacer {
		start++
	}
	for end > start && bs[end-1].Kind == BlockSpacer {
		end--
	}
	return bs[start:end]
}

// PrivacyBlocks renders the embedded privacy policy.
func PrivacyBlocks() []Block {
	return RenderLines(privacyDoc)
}

package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderLines_Prefixes(t *testing.T) {
	src := "# Title\n\n**Effective Date**\n## Section\n- item one\nplain text\n"

	got := RenderLines(src)
	assert.Equal(t, []Block{
		{Kind: BlockHeading, Text: "Title"},
		{Kind: BlockSpacer},
		{Kind: BlockBold, Text: "Effective Date"},
		{Kind: BlockSubheading, Text: "Section"},
		{Kind: BlockListItem, Text: "item one"},
		{Kind: BlockParagraph, Text: "plain text"},
	}, got)
}

func TestRenderLines_UnsupportedSyntaxIsLiteral(t *testing.T) {
	got := RenderLines("see **this** and [a link](http://x)\n### deep\n-no space")
	require.Len(t, got, 3)
	assert.Equal(t, Block{Kind: BlockParagraph, Text: "see **this** and [a link](http://x)"}, got[0])
	assert.Equal(t, BlockParagraph, got[1].Kind)
	assert.Equal(t, BlockParagraph, got[2].Kind)
}

func TestRenderLines_ListItemKeepsInlineBold(t *testing.T) {
	got := RenderLines("- **Personal Information**: Name")
	require.Len(t, got, 1)
	assert.Equal(t, BlockListItem, got[0].Kind)
	assert.Equal(t, "**Personal Information**: Name", got[0].Text)
}

func TestRenderLines_BareMarkersStayLiteral(t *testing.T) {
	got := RenderLines("**\n***\n**x**")
	assert.Equal(t, []Block{
		{Kind: BlockParagraph, Text: "**"},
		{Kind: BlockParagraph, Text: "***"},
		{Kind: BlockBold, Text: "x"},
	}, got)
}

func TestRenderLines_CRLF(t *testing.T) {
	got := RenderLines("# A\r\n- b\r\n")
	assert.Equal(t, []Block{{Kind: BlockHeading, Text: "A"}, {Kind: BlockListItem, Text: "b"}}, got)
}

func TestPrivacyBlocks(t *testing.T) {
	blocks := PrivacyBlocks()
	require.NotEmpty(t, blocks)
	assert.Equal(t, Block{Kind: BlockHeading, Text: "Privacy Policy"}, blocks[0])

	var subheadings int
	for _, b := range blocks {
		if b.Kind == BlockSubheading {
			subheadings++
		}
	}
	assert.Equal(t, 8, subheadings)
}

func TestDefaultSite(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "NaukariWala", s.Brand)
	assert.Len(t, s.Nav, 4)
	assert.Len(t, s.About.Features, 4)
	assert.Len(t, s.About.Values, 4)
	assert.Len(t, s.Contact.Channels, 4)
	assert.Len(t, s.Footer.Sections, 4)
	assert.Len(t, s.DeleteAccount.Steps, 5)
	assert.Equal(t, IconMail, s.Contact.Channels[0].Icon)
}

package htmldoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagName(t *testing.T) {
	root := parse(t, "<DIV>x</DIV>")
	div := FirstByTag(root, "div")
	require.NotNil(t, div)
	assert.Equal(t, "div", TagName(div))
	assert.Empty(t, TagName(nil))
	assert.Empty(t, TagName(root)) // document node
}

func TestElementCategories(t *testing.T) {
	root := parse(t, "<header>h</header><nav>n</nav><main>m</main><aside>a</aside><footer>f</footer><section>s</section><article>ar</article><div>d</div>")

	for _, tag := range []string{"header", "nav", "main", "aside", "footer"} {
		assert.True(t, IsLandmark(FirstByTag(root, tag)), "%s should be a landmark", tag)
	}
	assert.False(t, IsLandmark(FirstByTag(root, "div")))

	for _, tag := range []string{"article", "section", "nav", "aside"} {
		assert.True(t, IsSectioning(FirstByTag(root, tag)), "%s should be sectioning", tag)
	}
	assert.False(t, IsSectioning(FirstByTag(root, "main")))
}

func TestHeadingLevel(t *testing.T) {
	root := parse(t, "<h1>a</h1><h4>b</h4><p>c</p>")

	assert.Equal(t, 1, HeadingLevel(FirstByTag(root, "h1")))
	assert.Equal(t, 4, HeadingLevel(FirstByTag(root, "h4")))
	assert.Equal(t, 0, HeadingLevel(FirstByTag(root, "p")))
	assert.True(t, IsHeading(FirstByTag(root, "h1")))
	assert.False(t, IsHeading(FirstByTag(root, "p")))
}

func TestAttr(t *testing.T) {
	root := parse(t, `<div id="main" data-x="">x</div>`)
	div := FirstByTag(root, "div")
	require.NotNil(t, div)

	val, ok := Attr(div, "id")
	assert.True(t, ok)
	assert.Equal(t, "main", val)

	// Present but empty is still present.
	val, ok = Attr(div, "data-x")
	assert.True(t, ok)
	assert.Empty(t, val)

	_, ok = Attr(div, "class")
	assert.False(t, ok)

	assert.Equal(t, "main", AttrValue(div, "id"))
	assert.Empty(t, AttrValue(div, "class"))
	assert.True(t, HasAttr(div, "id"))
	assert.False(t, HasAttr(div, "class"))
}

func TestAttrCaseInsensitive(t *testing.T) {
	root := parse(t, `<div id="main">x</div>`)
	div := FirstByTag(root, "div")

	val, ok := Attr(div, "ID")
	assert.True(t, ok)
	assert.Equal(t, "main", val)
}

func TestRole(t *testing.T) {
	root := parse(t, `<div role=" Button ">x</div><span>y</span>`)

	assert.Equal(t, "button", Role(FirstByTag(root, "div")))
	assert.Empty(t, Role(FirstByTag(root, "span")))
}

func TestElementsByTagDocumentOrder(t *testing.T) {
	root := parse(t, "<div>1<div>2</div></div><div>3</div>")

	divs := ElementsByTag(root, "div")
	require.Len(t, divs, 3)

	// Pre-order: outer, nested, then the sibling.
	assert.Equal(t, "1", TextContent(divs[0])[:1])
	assert.Equal(t, "2", TextContent(divs[1]))
	assert.Equal(t, "3", TextContent(divs[2]))
}

func TestFirstByTag(t *testing.T) {
	root := parse(t, "<p>first</p><p>second</p>")

	p := FirstByTag(root, "p")
	require.NotNil(t, p)
	assert.Equal(t, "first", TextContent(p))

	assert.Nil(t, FirstByTag(root, "table"))
}

func TestHeadings(t *testing.T) {
	root := parse(t, "<h2>a</h2><div><h1>b</h1></div><h6>c</h6>")

	headings := Headings(root)
	require.Len(t, headings, 3)
	assert.Equal(t, "h2", TagName(headings[0]))
	assert.Equal(t, "h1", TagName(headings[1]))
	assert.Equal(t, "h6", TagName(headings[2]))
}

func TestElementChildren(t *testing.T) {
	root := parse(t, "<ul> <li>a</li> text <li>b</li> </ul>")
	ul := FirstByTag(root, "ul")

	children := ElementChildren(ul)
	require.Len(t, children, 2)
	assert.Equal(t, "li", TagName(children[0]))
	assert.Nil(t, ElementChildren(nil))
}

func TestTextContent(t *testing.T) {
	root := parse(t, "<div>one <em>two</em> three</div>")
	div := FirstByTag(root, "div")
	assert.Equal(t, "one two three", TextContent(div))
}

package html

import (
	"fmt"

	"github.com/swdunlop/fluent-html-go/encode"
	"golang.org/x/net/html/atom"
)

// The factory mixins below each open the elements of one leaf of the content model lattice.  A content model
// such as *Flow embeds the mixins for every leaf it permits, with C set to itself, so each factory returns an
// element whose Close returns that content model.  Every factory is declared by exactly one mixin.

// textNodes writes character data, comments and prerendered markup.
type textNodes[C any] struct{ s scope[C] }

// Text writes the text, encoded.
func (f textNodes[C]) Text(text string) C {
	f.s.doc.text(encode.Text, text)
	return f.s.self
}

// Textf formats its arguments with fmt.Sprintf and writes the result as Text.
func (f textNodes[C]) Textf(format string, args ...any) C {
	return f.Text(fmt.Sprintf(format, args...))
}

// Unsafe writes the markup without any encoding.  It must be valid where it is written.
func (f textNodes[C]) Unsafe(markup string) C {
	f.s.doc.rawString(markup)
	return f.s.self
}

// Comment writes an HTML comment.  It panics if the text would end the comment early.
func (f textNodes[C]) Comment(text string) C { return commentNode[C](f).Comment(text) }

// Include writes prerendered content, such as Static markup.  A Fragment is rendered in place.  A nil content
// writes nothing.
//
// Like Unsafe, Include is not checked against the content model: a Fragment writes through a Document, which
// permits any element, and Static markup is written as is.  The content must be valid where it is included.
func (f textNodes[C]) Include(content Content) C {
	if content != nil {
		f.s.doc.include(content)
	}
	return f.s.self
}

// commentNode adds Comment to scopes that permit no text, like a list or a table row.
type commentNode[C any] struct{ s scope[C] }

// Comment writes an HTML comment.  It panics if the text would end the comment early.
func (f commentNode[C]) Comment(text string) C {
	f.s.doc.comment(text)
	return f.s.self
}

type phrasingFactory[C any] struct{ s scope[C] }

func (f phrasingFactory[C]) Abbr() *Inline[C] { return newInline(f.s, atom.Abbr.String(), inline) }
func (f phrasingFactory[C]) B() *Inline[C]    { return newInline(f.s, atom.B.String(), inline) }
func (f phrasingFactory[C]) Bdi() *Inline[C]  { return newInline(f.s, atom.Bdi.String(), inline) }

// Bdo opens a <bdo>; it requires Dir to be set.
func (f phrasingFactory[C]) Bdo() *Inline[C] { return newInline(f.s, atom.Bdo.String(), inline) }

// Br writes a line break, which is followed by a newline when the document is indented.
func (f phrasingFactory[C]) Br() *Void[C] { return newVoid(f.s, atom.Br.String(), breaking) }

func (f phrasingFactory[C]) Cite() *Inline[C] { return newInline(f.s, atom.Cite.String(), inline) }
func (f phrasingFactory[C]) Code() *Inline[C] { return newInline(f.s, atom.Code.String(), inline) }

func (f phrasingFactory[C]) Data() *DataElement[C] { return newData(f.s, atom.Data.String()) }

// Datalist opens a list of suggestions for an <input>, referenced by its ID.
func (f phrasingFactory[C]) Datalist() *Container[C, *DataOptions] {
	return newContainer(f.s, atom.Datalist.String(), inline, dataOptionsOf)
}

func (f phrasingFactory[C]) Del() *Edit[C]       { return newEdit(f.s, atom.Del.String()) }
func (f phrasingFactory[C]) Dfn() *Inline[C]     { return newInline(f.s, atom.Dfn.String(), inline) }
func (f phrasingFactory[C]) Em() *Inline[C]      { return newInline(f.s, atom.Em.String(), inline) }
func (f phrasingFactory[C]) I() *Inline[C]       { return newInline(f.s, atom.I.String(), inline) }
func (f phrasingFactory[C]) Ins() *Edit[C]       { return newEdit(f.s, atom.Ins.String()) }
func (f phrasingFactory[C]) Kbd() *Inline[C]     { return newInline(f.s, atom.Kbd.String(), inline) }
func (f phrasingFactory[C]) Mark() *Inline[C]    { return newInline(f.s, atom.Mark.String(), inline) }
func (f phrasingFactory[C]) Meter() *Gauge[C]    { return newGauge(f.s, atom.Meter.String()) }
func (f phrasingFactory[C]) Output() *Output[C]  { return newOutput(f.s, atom.Output.String()) }
func (f phrasingFactory[C]) Progress() *Gauge[C] { return newGauge(f.s, atom.Progress.String()) }
func (f phrasingFactory[C]) Q() *Quote[C]        { return newQuote(f.s, atom.Q.String()) }
func (f phrasingFactory[C]) S() *Inline[C]       { return newInline(f.s, atom.S.String(), inline) }
func (f phrasingFactory[C]) Samp() *Inline[C]    { return newInline(f.s, atom.Samp.String(), inline) }
func (f phrasingFactory[C]) Small() *Inline[C]   { return newInline(f.s, atom.Small.String(), inline) }
func (f phrasingFactory[C]) Span() *Inline[C]    { return newInline(f.s, atom.Span.String(), inline) }
func (f phrasingFactory[C]) Strong() *Inline[C]  { return newInline(f.s, atom.Strong.String(), inline) }
func (f phrasingFactory[C]) Sub() *Inline[C]     { return newInline(f.s, atom.Sub.String(), inline) }
func (f phrasingFactory[C]) Sup() *Inline[C]     { return newInline(f.s, atom.Sup.String(), inline) }
func (f phrasingFactory[C]) Time() *Time[C]      { return newTime(f.s, atom.Time.String()) }
func (f phrasingFactory[C]) U() *Inline[C]       { return newInline(f.s, atom.U.String(), inline) }
func (f phrasingFactory[C]) Var() *Inline[C]     { return newInline(f.s, atom.Var.String(), inline) }
func (f phrasingFactory[C]) Wbr() *Void[C]       { return newVoid(f.s, atom.Wbr.String(), inline) }

// Custom opens a custom element, such as a web component.  Its content model is its parent's.  The name must be
// a valid custom element name: lowercase, starting with a letter and containing a hyphen, like "my-widget".  Any
// other name, including every standard element name, panics with ErrCustomName.
func (f phrasingFactory[C]) Custom(name string) *Transparent[C] {
	if !isCustomName(name) {
		f.s.doc.fault(ErrCustomName, name)
	}
	return newTransparent(f.s, name, inline)
}

type interactiveFactory[C any] struct{ s scope[C] }

// A opens a hyperlink.  The link takes on the content model of its parent.
func (f interactiveFactory[C]) A() *A[C] { return newA(f.s, atom.A.String()) }

func (f interactiveFactory[C]) Button() *Button[C] { return newButton(f.s, atom.Button.String()) }
func (f interactiveFactory[C]) Input() *Input[C]   { return newInput(f.s, atom.Input.String()) }
func (f interactiveFactory[C]) Label() *Label[C]   { return newLabel(f.s, atom.Label.String()) }
func (f interactiveFactory[C]) Select() *Select[C] { return newSelect(f.s, atom.Select.String()) }

// Textarea opens a multiline text control.  A line break that starts its text is doubled, as for Pre.
func (f interactiveFactory[C]) Textarea() *Textarea[C] {
	return newTextarea(f.s, atom.Textarea.String())
}

type embeddedFactory[C any] struct{ s scope[C] }

func (f embeddedFactory[C]) Audio() *Media[C]   { return newMedia(f.s, atom.Audio.String()) }
func (f embeddedFactory[C]) Canvas() *Canvas[C] { return newCanvas(f.s, atom.Canvas.String()) }
func (f embeddedFactory[C]) Embed() *Embed[C]   { return newEmbed(f.s, atom.Embed.String()) }
func (f embeddedFactory[C]) Iframe() *Iframe[C] { return newIframe(f.s, atom.Iframe.String()) }
func (f embeddedFactory[C]) Video() *Media[C]   { return newMedia(f.s, atom.Video.String()) }

// Picture opens a <picture>, whose body lists <source> alternatives before a final <img>.
func (f embeddedFactory[C]) Picture() *Container[C, *PictureSources] {
	return newContainer(f.s, atom.Picture.String(), inline, pictureSourcesOf)
}

type imageFactory[C any] struct{ s scope[C] }

func (f imageFactory[C]) Img() *Img[C] { return newImg(f.s, atom.Img.String()) }

type flowFactory[C any] struct{ s scope[C] }

func (f flowFactory[C]) Address() *Block[C] { return newBlock(f.s, atom.Address.String(), block) }

func (f flowFactory[C]) Blockquote() *Blockquote[C] {
	return newBlockquote(f.s, atom.Blockquote.String())
}

func (f flowFactory[C]) Details() *Details[C] { return newDetails(f.s, atom.Details.String()) }
func (f flowFactory[C]) Dialog() *Dialog[C]   { return newDialog(f.s, atom.Dialog.String()) }
func (f flowFactory[C]) Div() *Block[C]       { return newBlock(f.s, atom.Div.String(), block) }

// Dl opens a description list of <dt> terms and <dd> details.
func (f flowFactory[C]) Dl() *Container[C, *Terms] {
	return newContainer(f.s, atom.Dl.String(), block, termsOf)
}

func (f flowFactory[C]) Fieldset() *Fieldset[C] { return newFieldset(f.s, atom.Fieldset.String()) }

func (f flowFactory[C]) Figure() *Container[C, *Captioned] {
	return newContainer(f.s, atom.Figure.String(), block, captionedOf)
}

func (f flowFactory[C]) Footer() *Block[C] { return newBlock(f.s, atom.Footer.String(), block) }
func (f flowFactory[C]) Form() *Form[C]    { return newForm(f.s, atom.Form.String()) }
func (f flowFactory[C]) Header() *Block[C] { return newBlock(f.s, atom.Header.String(), block) }
func (f flowFactory[C]) Hr() *Void[C]      { return newVoid(f.s, atom.Hr.String(), block) }
func (f flowFactory[C]) Main() *Block[C]   { return newBlock(f.s, atom.Main.String(), block) }

func (f flowFactory[C]) Menu() *Container[C, *ListItems] {
	return newContainer(f.s, atom.Menu.String(), block, listItemsOf)
}

func (f flowFactory[C]) Ol() *OrderedList[C] { return newOrderedList(f.s, atom.Ol.String()) }
func (f flowFactory[C]) P() *Inline[C]       { return newInline(f.s, atom.P.String(), block) }

// Pre opens preformatted text.  No whitespace is added anywhere inside it, and a line break that starts the
// content is doubled so that parsers, which drop the first, keep it.
func (f flowFactory[C]) Pre() *Inline[C] { return newInline(f.s, atom.Pre.String(), preformatted) }

// Search opens a <search>, which groups the controls of a search or filter.
func (f flowFactory[C]) Search() *Block[C] { return newBlock(f.s, `search`, block) }

func (f flowFactory[C]) Table() *Container[C, *TableParts] {
	return newContainer(f.s, atom.Table.String(), block, tablePartsOf)
}

func (f flowFactory[C]) Ul() *Container[C, *ListItems] {
	return newContainer(f.s, atom.Ul.String(), block, listItemsOf)
}

type headingFactory[C any] struct{ s scope[C] }

func (f headingFactory[C]) H1() *Inline[C]    { return newInline(f.s, atom.H1.String(), block) }
func (f headingFactory[C]) H2() *Inline[C]    { return newInline(f.s, atom.H2.String(), block) }
func (f headingFactory[C]) H3() *Inline[C]    { return newInline(f.s, atom.H3.String(), block) }
func (f headingFactory[C]) H4() *Inline[C]    { return newInline(f.s, atom.H4.String(), block) }
func (f headingFactory[C]) H5() *Inline[C]    { return newInline(f.s, atom.H5.String(), block) }
func (f headingFactory[C]) H6() *Inline[C]    { return newInline(f.s, atom.H6.String(), block) }
func (f headingFactory[C]) Hgroup() *Block[C] { return newBlock(f.s, atom.Hgroup.String(), block) }

type sectioningFactory[C any] struct{ s scope[C] }

func (f sectioningFactory[C]) Article() *Block[C] { return newBlock(f.s, atom.Article.String(), block) }
func (f sectioningFactory[C]) Aside() *Block[C]   { return newBlock(f.s, atom.Aside.String(), block) }
func (f sectioningFactory[C]) Nav() *Block[C]     { return newBlock(f.s, atom.Nav.String(), block) }
func (f sectioningFactory[C]) Section() *Block[C] { return newBlock(f.s, atom.Section.String(), block) }

// scriptFactory opens the script-supporting elements, which are permitted almost everywhere.
type scriptFactory[C any] struct{ s scope[C] }

func (f scriptFactory[C]) Script() *Script[C] { return newScript(f.s, atom.Script.String()) }

// Template opens a <template>, whose content is parsed but not rendered by the browser.
func (f scriptFactory[C]) Template() *Block[C] { return newBlock(f.s, atom.Template.String(), block) }

// Noscript opens a <noscript>, whose content uses the content model of its parent.
func (f scriptFactory[C]) Noscript() *Transparent[C] {
	return newTransparent(f.s, atom.Noscript.String(), block)
}

type metadataFactory[C any] struct{ s scope[C] }

func (f metadataFactory[C]) Base() *Base[C]          { return newBase(f.s, atom.Base.String()) }
func (f metadataFactory[C]) Link() *Link[C]          { return newLink(f.s, atom.Link.String()) }
func (f metadataFactory[C]) Meta() *Meta[C]          { return newMeta(f.s, atom.Meta.String()) }
func (f metadataFactory[C]) Style() *StyleElement[C] { return newStyle(f.s, atom.Style.String()) }
func (f metadataFactory[C]) Title() *TextOnly[C]     { return newTextOnly(f.s, atom.Title.String(), block) }

type rootFactory[C any] struct{ s scope[C] }

// HTML opens the root <html> element.
func (f rootFactory[C]) HTML() *Root[C] { return newRoot(f.s, atom.Html.String()) }

type sectionsFactory[C any] struct{ s scope[C] }

func (f sectionsFactory[C]) Head() *Container[C, *Metadata] {
	return newContainer(f.s, atom.Head.String(), block, metadataOf)
}

func (f sectionsFactory[C]) Body() *Block[C] { return newBlock(f.s, atom.Body.String(), block) }

type listItemFactory[C any] struct{ s scope[C] }

func (f listItemFactory[C]) Li() *ListItem[C] { return newListItem(f.s, atom.Li.String()) }

type termFactory[C any] struct{ s scope[C] }

func (f termFactory[C]) Dt() *Block[C] { return newBlock(f.s, atom.Dt.String(), block) }
func (f termFactory[C]) Dd() *Block[C] { return newBlock(f.s, atom.Dd.String(), block) }

type tablePartFactory[C any] struct{ s scope[C] }

func (f tablePartFactory[C]) Caption() *Block[C] { return newBlock(f.s, atom.Caption.String(), block) }

func (f tablePartFactory[C]) Colgroup() *Colgroup[C] {
	return newColgroup(f.s, atom.Colgroup.String())
}

func (f tablePartFactory[C]) Thead() *Container[C, *Rows] {
	return newContainer(f.s, atom.Thead.String(), block, rowsOf)
}

func (f tablePartFactory[C]) Tbody() *Container[C, *Rows] {
	return newContainer(f.s, atom.Tbody.String(), block, rowsOf)
}

func (f tablePartFactory[C]) Tfoot() *Container[C, *Rows] {
	return newContainer(f.s, atom.Tfoot.String(), block, rowsOf)
}

type rowFactory[C any] struct{ s scope[C] }

func (f rowFactory[C]) Tr() *Container[C, *Cells] {
	return newContainer(f.s, atom.Tr.String(), block, cellsOf)
}

type cellFactory[C any] struct{ s scope[C] }

func (f cellFactory[C]) Td() *Cell[C] { return newCell(f.s, atom.Td.String()) }
func (f cellFactory[C]) Th() *Cell[C] { return newCell(f.s, atom.Th.String()) }

type columnFactory[C any] struct{ s scope[C] }

func (f columnFactory[C]) Col() *Col[C] { return newCol(f.s, atom.Col.String()) }

type optionFactory[C any] struct{ s scope[C] }

func (f optionFactory[C]) Option() *OptionElement[C] { return newOption(f.s, atom.Option.String()) }

type optgroupFactory[C any] struct{ s scope[C] }

func (f optgroupFactory[C]) Optgroup() *Optgroup[C] { return newOptgroup(f.s, atom.Optgroup.String()) }

type figcaptionFactory[C any] struct{ s scope[C] }

func (f figcaptionFactory[C]) Figcaption() *Block[C] {
	return newBlock(f.s, atom.Figcaption.String(), block)
}

type summaryFactory[C any] struct{ s scope[C] }

func (f summaryFactory[C]) Summary() *Inline[C] { return newInline(f.s, atom.Summary.String(), block) }

type legendFactory[C any] struct{ s scope[C] }

func (f legendFactory[C]) Legend() *Inline[C] { return newInline(f.s, atom.Legend.String(), block) }

type sourceFactory[C any] struct{ s scope[C] }

func (f sourceFactory[C]) Source() *Source[C] { return newSource(f.s, atom.Source.String()) }

type trackFactory[C any] struct{ s scope[C] }

func (f trackFactory[C]) Track() *Track[C] { return newTrack(f.s, atom.Track.String()) }

// phrasingLeaves are the leaves of phrasing content.
type phrasingLeaves[C any] struct {
	textNodes[C]
	phrasingFactory[C]
	interactiveFactory[C]
	embeddedFactory[C]
	imageFactory[C]
	scriptFactory[C]
}

func bindPhrasingLeaves[C any](s scope[C]) phrasingLeaves[C] {
	return phrasingLeaves[C]{
		textNodes[C]{s},
		phrasingFactory[C]{s},
		interactiveFactory[C]{s},
		embeddedFactory[C]{s},
		imageFactory[C]{s},
		scriptFactory[C]{s},
	}
}

// flowLeaves are the leaves of flow content, which includes all of phrasing content.
type flowLeaves[C any] struct {
	phrasingLeaves[C]
	flowFactory[C]
	headingFactory[C]
	sectioningFactory[C]
}

func bindFlowLeaves[C any](s scope[C]) flowLeaves[C] {
	return flowLeaves[C]{bindPhrasingLeaves(s), flowFactory[C]{s}, headingFactory[C]{s}, sectioningFactory[C]{s}}
}

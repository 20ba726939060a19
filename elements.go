package html

import (
	"github.com/swdunlop/fluent-html-go/encode"
)

// Each element type below is parameterized by P, the content model of its parent, which its Close, Text and
// With methods return.  Element values are only valid until their body or Close method is called.

// Block is an element whose content is flow content, such as <div>, <section> or <li>.
type Block[P any] struct {
	normal[P, *Flow]
	globalAttrs[*Block[P]]
}

func newBlock[P any](s scope[P], name string, ws layout) *Block[P] {
	e := &Block[P]{normal: normal[P, *Flow]{openElement(s, name, ws), flowOf}}
	e.globalAttrs = globalAttrs[*Block[P]]{bindAttrs(e.element, e)}
	return e
}

// Inline is an element whose content is phrasing content, such as <span>, <p> or <h1>.
type Inline[P any] struct {
	normal[P, *Phrasing]
	globalAttrs[*Inline[P]]
}

func newInline[P any](s scope[P], name string, ws layout) *Inline[P] {
	e := &Inline[P]{normal: normal[P, *Phrasing]{openElement(s, name, ws), phrasingOf}}
	e.globalAttrs = globalAttrs[*Inline[P]]{bindAttrs(e.element, e)}
	return e
}

// Container is an element with a specific content model, B, and only the global attributes, such as <dl>
// with *Terms or <tr> with *Cells.
type Container[P, B any] struct {
	normal[P, B]
	globalAttrs[*Container[P, B]]
}

func newContainer[P, B any](s scope[P], name string, ws layout, content func(*Document) B) *Container[P, B] {
	e := &Container[P, B]{normal: normal[P, B]{openElement(s, name, ws), content}}
	e.globalAttrs = globalAttrs[*Container[P, B]]{bindAttrs(e.element, e)}
	return e
}

// Void is an element that never has content and only the global attributes, such as <br> or <hr>.
type Void[P any] struct {
	void[P]
	globalAttrs[*Void[P]]
}

func newVoid[P any](s scope[P], name string, ws layout) *Void[P] {
	e := &Void[P]{void: void[P]{openElement(s, name, ws)}}
	e.globalAttrs = globalAttrs[*Void[P]]{bindAttrs(e.element, e)}
	return e
}

// Transparent is an element whose content model is its parent's, such as <noscript>.
type Transparent[P any] struct {
	transparent[P]
	globalAttrs[*Transparent[P]]
}

func newTransparent[P any](s scope[P], name string, ws layout) *Transparent[P] {
	e := &Transparent[P]{transparent: transparent[P]{openElement(s, name, ws)}}
	e.globalAttrs = globalAttrs[*Transparent[P]]{bindAttrs(e.element, e)}
	return e
}

// TextOnly is an element whose only content is text, such as <title>.
type TextOnly[P any] struct {
	textual[P]
	globalAttrs[*TextOnly[P]]
}

func newTextOnly[P any](s scope[P], name string, ws layout) *TextOnly[P] {
	e := &TextOnly[P]{textual: textual[P]{openElement(s, name, ws), encode.Text}}
	e.globalAttrs = globalAttrs[*TextOnly[P]]{bindAttrs(e.element, e)}
	return e
}

// Root is the <html> element.  In XHTML it carries the XHTML namespace.
type Root[P any] struct {
	normal[P, *Sections]
	globalAttrs[*Root[P]]
}

const xhtmlNamespace = `http://www.w3.org/1999/xhtml`

func newRoot[P any](s scope[P], name string) *Root[P] {
	e := &Root[P]{normal: normal[P, *Sections]{openElement(s, name, block), sectionsOf}}
	e.globalAttrs = globalAttrs[*Root[P]]{bindAttrs(e.element, e)}
	if s.doc.cfg.serialization == XHTML {
		e.Attr(`xmlns`, xhtmlNamespace)
	}
	return e
}

// Base is the <base> element.
type Base[P any] struct {
	void[P]
	globalAttrs[*Base[P]]
	baseAttrs[*Base[P]]
}

func newBase[P any](s scope[P], name string) *Base[P] {
	e := &Base[P]{void: void[P]{openElement(s, name, block)}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Base[P]]{a}
	e.baseAttrs = baseAttrs[*Base[P]]{a}
	return e
}

// Link is the <link> element.
type Link[P any] struct {
	void[P]
	globalAttrs[*Link[P]]
	linkAttrs[*Link[P]]
	typeAttr[*Link[P]]
	mediaQueryAttr[*Link[P]]
	fetchAttrs[*Link[P]]
}

func newLink[P any](s scope[P], name string) *Link[P] {
	e := &Link[P]{void: void[P]{openElement(s, name, block)}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Link[P]]{a}
	e.linkAttrs = linkAttrs[*Link[P]]{a}
	e.typeAttr = typeAttr[*Link[P]]{a}
	e.mediaQueryAttr = mediaQueryAttr[*Link[P]]{a}
	e.fetchAttrs = fetchAttrs[*Link[P]]{a}
	return e
}

// Meta is the <meta> element.
type Meta[P any] struct {
	void[P]
	globalAttrs[*Meta[P]]
	nameAttr[*Meta[P]]
	metaAttrs[*Meta[P]]
}

func newMeta[P any](s scope[P], name string) *Meta[P] {
	e := &Meta[P]{void: void[P]{openElement(s, name, block)}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Meta[P]]{a}
	e.nameAttr = nameAttr[*Meta[P]]{a}
	e.metaAttrs = metaAttrs[*Meta[P]]{a}
	return e
}

// StyleElement is the <style> element; its text is written as CSS.
type StyleElement[P any] struct {
	textual[P]
	globalAttrs[*StyleElement[P]]
	mediaQueryAttr[*StyleElement[P]]
}

func newStyle[P any](s scope[P], name string) *StyleElement[P] {
	e := &StyleElement[P]{textual: textual[P]{openElement(s, name, block), encode.Style}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*StyleElement[P]]{a}
	e.mediaQueryAttr = mediaQueryAttr[*StyleElement[P]]{a}
	return e
}

// Script is the <script> element; its text is written as JavaScript.
type Script[P any] struct {
	textual[P]
	globalAttrs[*Script[P]]
	srcAttr[*Script[P]]
	typeAttr[*Script[P]]
	scriptAttrs[*Script[P]]
	fetchAttrs[*Script[P]]
}

func newScript[P any](s scope[P], name string) *Script[P] {
	e := &Script[P]{textual: textual[P]{openElement(s, name, block), encode.Script}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Script[P]]{a}
	e.srcAttr = srcAttr[*Script[P]]{a}
	e.typeAttr = typeAttr[*Script[P]]{a}
	e.scriptAttrs = scriptAttrs[*Script[P]]{a}
	e.fetchAttrs = fetchAttrs[*Script[P]]{a}
	return e
}

// A is the <a> element.  Its content model is its parent's.
type A[P any] struct {
	transparent[P]
	globalAttrs[*A[P]]
	hyperlinkAttrs[*A[P]]
}

func newA[P any](s scope[P], name string) *A[P] {
	e := &A[P]{transparent: transparent[P]{openElement(s, name, inline)}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*A[P]]{a}
	e.hyperlinkAttrs = hyperlinkAttrs[*A[P]]{a}
	return e
}

// Edit is an <ins> or <del> element.  Its content model is its parent's.
type Edit[P any] struct {
	transparent[P]
	globalAttrs[*Edit[P]]
	citeAttr[*Edit[P]]
	datetimeAttr[*Edit[P]]
}

func newEdit[P any](s scope[P], name string) *Edit[P] {
	e := &Edit[P]{transparent: transparent[P]{openElement(s, name, inline)}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Edit[P]]{a}
	e.citeAttr = citeAttr[*Edit[P]]{a}
	e.datetimeAttr = datetimeAttr[*Edit[P]]{a}
	return e
}

// Quote is the <q> element.
type Quote[P any] struct {
	normal[P, *Phrasing]
	globalAttrs[*Quote[P]]
	citeAttr[*Quote[P]]
}

func newQuote[P any](s scope[P], name string) *Quote[P] {
	e := &Quote[P]{normal: normal[P, *Phrasing]{openElement(s, name, inline), phrasingOf}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Quote[P]]{a}
	e.citeAttr = citeAttr[*Quote[P]]{a}
	return e
}

// Blockquote is the <blockquote> element.
type Blockquote[P any] struct {
	normal[P, *Flow]
	globalAttrs[*Blockquote[P]]
	citeAttr[*Blockquote[P]]
}

func newBlockquote[P any](s scope[P], name string) *Blockquote[P] {
	e := &Blockquote[P]{normal: normal[P, *Flow]{openElement(s, name, block), flowOf}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Blockquote[P]]{a}
	e.citeAttr = citeAttr[*Blockquote[P]]{a}
	return e
}

// Time is the <time> element.
type Time[P any] struct {
	normal[P, *Phrasing]
	globalAttrs[*Time[P]]
	datetimeAttr[*Time[P]]
}

func newTime[P any](s scope[P], name string) *Time[P] {
	e := &Time[P]{normal: normal[P, *Phrasing]{openElement(s, name, inline), phrasingOf}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Time[P]]{a}
	e.datetimeAttr = datetimeAttr[*Time[P]]{a}
	return e
}

// DataElement is the <data> element, which pairs its content with a machine readable value.
type DataElement[P any] struct {
	normal[P, *Phrasing]
	globalAttrs[*DataElement[P]]
	valueAttr[*DataElement[P]]
}

func newData[P any](s scope[P], name string) *DataElement[P] {
	e := &DataElement[P]{normal: normal[P, *Phrasing]{openElement(s, name, inline), phrasingOf}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*DataElement[P]]{a}
	e.valueAttr = valueAttr[*DataElement[P]]{a}
	return e
}

// Gauge is a <meter> or <progress> element.  Low, High and Optimum only apply to <meter>.
type Gauge[P any] struct {
	normal[P, *Phrasing]
	globalAttrs[*Gauge[P]]
	rangeAttrs[*Gauge[P]]
}

func newGauge[P any](s scope[P], name string) *Gauge[P] {
	e := &Gauge[P]{normal: normal[P, *Phrasing]{openElement(s, name, inline), phrasingOf}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Gauge[P]]{a}
	e.rangeAttrs = rangeAttrs[*Gauge[P]]{a}
	return e
}

// Output is the <output> element.
type Output[P any] struct {
	normal[P, *Phrasing]
	globalAttrs[*Output[P]]
	nameAttr[*Output[P]]
	forAttr[*Output[P]]
}

func newOutput[P any](s scope[P], name string) *Output[P] {
	e := &Output[P]{normal: normal[P, *Phrasing]{openElement(s, name, inline), phrasingOf}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Output[P]]{a}
	e.nameAttr = nameAttr[*Output[P]]{a}
	e.forAttr = forAttr[*Output[P]]{a}
	return e
}

// Label is the <label> element.
type Label[P any] struct {
	normal[P, *Phrasing]
	globalAttrs[*Label[P]]
	forAttr[*Label[P]]
}

func newLabel[P any](s scope[P], name string) *Label[P] {
	e := &Label[P]{normal: normal[P, *Phrasing]{openElement(s, name, inline), phrasingOf}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Label[P]]{a}
	e.forAttr = forAttr[*Label[P]]{a}
	return e
}

// Button is the <button> element.
type Button[P any] struct {
	normal[P, *Phrasing]
	globalAttrs[*Button[P]]
	nameAttr[*Button[P]]
	valueAttr[*Button[P]]
	disabledAttr[*Button[P]]
	buttonAttrs[*Button[P]]
}

func newButton[P any](s scope[P], name string) *Button[P] {
	e := &Button[P]{normal: normal[P, *Phrasing]{openElement(s, name, inline), phrasingOf}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Button[P]]{a}
	e.nameAttr = nameAttr[*Button[P]]{a}
	e.valueAttr = valueAttr[*Button[P]]{a}
	e.disabledAttr = disabledAttr[*Button[P]]{a}
	e.buttonAttrs = buttonAttrs[*Button[P]]{a}
	return e
}

// Input is the <input> element.
type Input[P any] struct {
	void[P]
	globalAttrs[*Input[P]]
	nameAttr[*Input[P]]
	valueAttr[*Input[P]]
	disabledAttr[*Input[P]]
	requiredAttr[*Input[P]]
	readonlyAttr[*Input[P]]
	placeholderAttr[*Input[P]]
	autocompleteAttr[*Input[P]]
	multipleAttr[*Input[P]]
	inputAttrs[*Input[P]]
}

func newInput[P any](s scope[P], name string) *Input[P] {
	e := &Input[P]{void: void[P]{openElement(s, name, inline)}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Input[P]]{a}
	e.nameAttr = nameAttr[*Input[P]]{a}
	e.valueAttr = valueAttr[*Input[P]]{a}
	e.disabledAttr = disabledAttr[*Input[P]]{a}
	e.requiredAttr = requiredAttr[*Input[P]]{a}
	e.readonlyAttr = readonlyAttr[*Input[P]]{a}
	e.placeholderAttr = placeholderAttr[*Input[P]]{a}
	e.autocompleteAttr = autocompleteAttr[*Input[P]]{a}
	e.multipleAttr = multipleAttr[*Input[P]]{a}
	e.inputAttrs = inputAttrs[*Input[P]]{a}
	return e
}

// Textarea is the <textarea> element.  Its text is the initial value of the control.
type Textarea[P any] struct {
	textual[P]
	globalAttrs[*Textarea[P]]
	nameAttr[*Textarea[P]]
	disabledAttr[*Textarea[P]]
	requiredAttr[*Textarea[P]]
	readonlyAttr[*Textarea[P]]
	placeholderAttr[*Textarea[P]]
	autocompleteAttr[*Textarea[P]]
	textareaAttrs[*Textarea[P]]
}

func newTextarea[P any](s scope[P], name string) *Textarea[P] {
	e := &Textarea[P]{textual: textual[P]{openElement(s, name, inline), encode.Text}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Textarea[P]]{a}
	e.nameAttr = nameAttr[*Textarea[P]]{a}
	e.disabledAttr = disabledAttr[*Textarea[P]]{a}
	e.requiredAttr = requiredAttr[*Textarea[P]]{a}
	e.readonlyAttr = readonlyAttr[*Textarea[P]]{a}
	e.placeholderAttr = placeholderAttr[*Textarea[P]]{a}
	e.autocompleteAttr = autocompleteAttr[*Textarea[P]]{a}
	e.textareaAttrs = textareaAttrs[*Textarea[P]]{a}
	return e
}

// Select is the <select> element.
type Select[P any] struct {
	normal[P, *SelectOptions]
	globalAttrs[*Select[P]]
	nameAttr[*Select[P]]
	disabledAttr[*Select[P]]
	requiredAttr[*Select[P]]
	multipleAttr[*Select[P]]
	autocompleteAttr[*Select[P]]
	selectAttrs[*Select[P]]
}

func newSelect[P any](s scope[P], name string) *Select[P] {
	e := &Select[P]{normal: normal[P, *SelectOptions]{openElement(s, name, inline), selectOptionsOf}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Select[P]]{a}
	e.nameAttr = nameAttr[*Select[P]]{a}
	e.disabledAttr = disabledAttr[*Select[P]]{a}
	e.requiredAttr = requiredAttr[*Select[P]]{a}
	e.multipleAttr = multipleAttr[*Select[P]]{a}
	e.autocompleteAttr = autocompleteAttr[*Select[P]]{a}
	e.selectAttrs = selectAttrs[*Select[P]]{a}
	return e
}

// OptionElement is the <option> element.  Its text is the label of the option.
type OptionElement[P any] struct {
	textual[P]
	globalAttrs[*OptionElement[P]]
	valueAttr[*OptionElement[P]]
	disabledAttr[*OptionElement[P]]
	labelAttr[*OptionElement[P]]
	optionAttrs[*OptionElement[P]]
}

func newOption[P any](s scope[P], name string) *OptionElement[P] {
	e := &OptionElement[P]{textual: textual[P]{openElement(s, name, block), encode.Text}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*OptionElement[P]]{a}
	e.valueAttr = valueAttr[*OptionElement[P]]{a}
	e.disabledAttr = disabledAttr[*OptionElement[P]]{a}
	e.labelAttr = labelAttr[*OptionElement[P]]{a}
	e.optionAttrs = optionAttrs[*OptionElement[P]]{a}
	return e
}

// Optgroup is the <optgroup> element.
type Optgroup[P any] struct {
	normal[P, *GroupOptions]
	globalAttrs[*Optgroup[P]]
	disabledAttr[*Optgroup[P]]
	labelAttr[*Optgroup[P]]
}

func newOptgroup[P any](s scope[P], name string) *Optgroup[P] {
	e := &Optgroup[P]{normal: normal[P, *GroupOptions]{openElement(s, name, block), groupOptionsOf}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Optgroup[P]]{a}
	e.disabledAttr = disabledAttr[*Optgroup[P]]{a}
	e.labelAttr = labelAttr[*Optgroup[P]]{a}
	return e
}

// Form is the <form> element.
type Form[P any] struct {
	normal[P, *Flow]
	globalAttrs[*Form[P]]
	nameAttr[*Form[P]]
	autocompleteAttr[*Form[P]]
	formAttrs[*Form[P]]
}

func newForm[P any](s scope[P], name string) *Form[P] {
	e := &Form[P]{normal: normal[P, *Flow]{openElement(s, name, block), flowOf}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Form[P]]{a}
	e.nameAttr = nameAttr[*Form[P]]{a}
	e.autocompleteAttr = autocompleteAttr[*Form[P]]{a}
	e.formAttrs = formAttrs[*Form[P]]{a}
	return e
}

// Fieldset is the <fieldset> element.  Its body may start with a <legend>.
type Fieldset[P any] struct {
	normal[P, *Legended]
	globalAttrs[*Fieldset[P]]
	nameAttr[*Fieldset[P]]
	disabledAttr[*Fieldset[P]]
}

func newFieldset[P any](s scope[P], name string) *Fieldset[P] {
	e := &Fieldset[P]{normal: normal[P, *Legended]{openElement(s, name, block), legendedOf}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Fieldset[P]]{a}
	e.nameAttr = nameAttr[*Fieldset[P]]{a}
	e.disabledAttr = disabledAttr[*Fieldset[P]]{a}
	return e
}

// Details is the <details> element.  Its body may start with a <summary>.
type Details[P any] struct {
	normal[P, *Disclosure]
	globalAttrs[*Details[P]]
	nameAttr[*Details[P]]
	openAttr[*Details[P]]
}

func newDetails[P any](s scope[P], name string) *Details[P] {
	e := &Details[P]{normal: normal[P, *Disclosure]{openElement(s, name, block), disclosureOf}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Details[P]]{a}
	e.nameAttr = nameAttr[*Details[P]]{a}
	e.openAttr = openAttr[*Details[P]]{a}
	return e
}

// Dialog is the <dialog> element.
type Dialog[P any] struct {
	normal[P, *Flow]
	globalAttrs[*Dialog[P]]
	openAttr[*Dialog[P]]
}

func newDialog[P any](s scope[P], name string) *Dialog[P] {
	e := &Dialog[P]{normal: normal[P, *Flow]{openElement(s, name, block), flowOf}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Dialog[P]]{a}
	e.openAttr = openAttr[*Dialog[P]]{a}
	return e
}

// OrderedList is the <ol> element.
type OrderedList[P any] struct {
	normal[P, *ListItems]
	globalAttrs[*OrderedList[P]]
	orderedListAttrs[*OrderedList[P]]
}

func newOrderedList[P any](s scope[P], name string) *OrderedList[P] {
	e := &OrderedList[P]{normal: normal[P, *ListItems]{openElement(s, name, block), listItemsOf}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*OrderedList[P]]{a}
	e.orderedListAttrs = orderedListAttrs[*OrderedList[P]]{a}
	return e
}

// ListItem is the <li> element.
type ListItem[P any] struct {
	normal[P, *Flow]
	globalAttrs[*ListItem[P]]
	ordinalAttr[*ListItem[P]]
}

func newListItem[P any](s scope[P], name string) *ListItem[P] {
	e := &ListItem[P]{normal: normal[P, *Flow]{openElement(s, name, block), flowOf}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*ListItem[P]]{a}
	e.ordinalAttr = ordinalAttr[*ListItem[P]]{a}
	return e
}

// Colgroup is the <colgroup> element.
type Colgroup[P any] struct {
	normal[P, *Columns]
	globalAttrs[*Colgroup[P]]
	spanAttr[*Colgroup[P]]
}

func newColgroup[P any](s scope[P], name string) *Colgroup[P] {
	e := &Colgroup[P]{normal: normal[P, *Columns]{openElement(s, name, block), columnsOf}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Colgroup[P]]{a}
	e.spanAttr = spanAttr[*Colgroup[P]]{a}
	return e
}

// Col is the <col> element.
type Col[P any] struct {
	void[P]
	globalAttrs[*Col[P]]
	spanAttr[*Col[P]]
}

func newCol[P any](s scope[P], name string) *Col[P] {
	e := &Col[P]{void: void[P]{openElement(s, name, block)}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Col[P]]{a}
	e.spanAttr = spanAttr[*Col[P]]{a}
	return e
}

// Cell is a <td> or <th> element.
type Cell[P any] struct {
	normal[P, *Flow]
	globalAttrs[*Cell[P]]
	cellAttrs[*Cell[P]]
}

func newCell[P any](s scope[P], name string) *Cell[P] {
	e := &Cell[P]{normal: normal[P, *Flow]{openElement(s, name, block), flowOf}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Cell[P]]{a}
	e.cellAttrs = cellAttrs[*Cell[P]]{a}
	return e
}

// Img is the <img> element.
type Img[P any] struct {
	void[P]
	globalAttrs[*Img[P]]
	srcAttr[*Img[P]]
	dimensionAttrs[*Img[P]]
	imgAttrs[*Img[P]]
	fetchAttrs[*Img[P]]
}

func newImg[P any](s scope[P], name string) *Img[P] {
	e := &Img[P]{void: void[P]{openElement(s, name, inline)}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Img[P]]{a}
	e.srcAttr = srcAttr[*Img[P]]{a}
	e.dimensionAttrs = dimensionAttrs[*Img[P]]{a}
	e.imgAttrs = imgAttrs[*Img[P]]{a}
	e.fetchAttrs = fetchAttrs[*Img[P]]{a}
	return e
}

// Iframe is the <iframe> element.
type Iframe[P any] struct {
	textual[P]
	globalAttrs[*Iframe[P]]
	nameAttr[*Iframe[P]]
	srcAttr[*Iframe[P]]
	dimensionAttrs[*Iframe[P]]
	iframeAttrs[*Iframe[P]]
}

func newIframe[P any](s scope[P], name string) *Iframe[P] {
	e := &Iframe[P]{textual: textual[P]{openElement(s, name, inline), encode.Text}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Iframe[P]]{a}
	e.nameAttr = nameAttr[*Iframe[P]]{a}
	e.srcAttr = srcAttr[*Iframe[P]]{a}
	e.dimensionAttrs = dimensionAttrs[*Iframe[P]]{a}
	e.iframeAttrs = iframeAttrs[*Iframe[P]]{a}
	return e
}

// Embed is the <embed> element.
type Embed[P any] struct {
	void[P]
	globalAttrs[*Embed[P]]
	srcAttr[*Embed[P]]
	typeAttr[*Embed[P]]
	dimensionAttrs[*Embed[P]]
}

func newEmbed[P any](s scope[P], name string) *Embed[P] {
	e := &Embed[P]{void: void[P]{openElement(s, name, inline)}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Embed[P]]{a}
	e.srcAttr = srcAttr[*Embed[P]]{a}
	e.typeAttr = typeAttr[*Embed[P]]{a}
	e.dimensionAttrs = dimensionAttrs[*Embed[P]]{a}
	return e
}

// Canvas is the <canvas> element.  Its content, shown when scripting is unavailable, uses the parent's
// content model.
type Canvas[P any] struct {
	transparent[P]
	globalAttrs[*Canvas[P]]
	dimensionAttrs[*Canvas[P]]
}

func newCanvas[P any](s scope[P], name string) *Canvas[P] {
	e := &Canvas[P]{transparent: transparent[P]{openElement(s, name, inline)}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Canvas[P]]{a}
	e.dimensionAttrs = dimensionAttrs[*Canvas[P]]{a}
	return e
}

// Media is an <audio> or <video> element.  Width, Height, Poster and PlaysInline only apply to <video>.
type Media[P any] struct {
	normal[P, *MediaSources]
	globalAttrs[*Media[P]]
	srcAttr[*Media[P]]
	dimensionAttrs[*Media[P]]
	mediaAttrs[*Media[P]]
}

func newMedia[P any](s scope[P], name string) *Media[P] {
	e := &Media[P]{normal: normal[P, *MediaSources]{openElement(s, name, block), mediaSourcesOf}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Media[P]]{a}
	e.srcAttr = srcAttr[*Media[P]]{a}
	e.dimensionAttrs = dimensionAttrs[*Media[P]]{a}
	e.mediaAttrs = mediaAttrs[*Media[P]]{a}
	return e
}

// Source is the <source> element of a <picture>, <audio> or <video>.
type Source[P any] struct {
	void[P]
	globalAttrs[*Source[P]]
	srcAttr[*Source[P]]
	typeAttr[*Source[P]]
	mediaQueryAttr[*Source[P]]
	dimensionAttrs[*Source[P]]
	sourceAttrs[*Source[P]]
}

func newSource[P any](s scope[P], name string) *Source[P] {
	e := &Source[P]{void: void[P]{openElement(s, name, block)}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Source[P]]{a}
	e.srcAttr = srcAttr[*Source[P]]{a}
	e.typeAttr = typeAttr[*Source[P]]{a}
	e.mediaQueryAttr = mediaQueryAttr[*Source[P]]{a}
	e.dimensionAttrs = dimensionAttrs[*Source[P]]{a}
	e.sourceAttrs = sourceAttrs[*Source[P]]{a}
	return e
}

// Track is the <track> element.
type Track[P any] struct {
	void[P]
	globalAttrs[*Track[P]]
	srcAttr[*Track[P]]
	labelAttr[*Track[P]]
	trackAttrs[*Track[P]]
}

func newTrack[P any](s scope[P], name string) *Track[P] {
	e := &Track[P]{void: void[P]{openElement(s, name, block)}}
	a := bindAttrs(e.element, e)
	e.globalAttrs = globalAttrs[*Track[P]]{a}
	e.srcAttr = srcAttr[*Track[P]]{a}
	e.labelAttr = labelAttr[*Track[P]]{a}
	e.trackAttrs = trackAttrs[*Track[P]]{a}
	return e
}

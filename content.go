package html

// The interfaces below name the content categories of HTML so that reusable components can be written once for
// every content model that permits them.  C is the content model the component returns to, for example:
//
//	func Badge[C any](c html.PhrasingContent[C], label string) C {
//		return c.Span().Class(`badge`).Text(label)
//	}
//
// which may be used with a *Phrasing, a *Flow, a *Document or any other content model that permits phrasing
// content.

// TextContent writes character data.
type TextContent[C any] interface {
	Text(text string) C
	Textf(format string, args ...any) C
	Unsafe(markup string) C
	Comment(text string) C
	Include(content Content) C
}

// ScriptSupportingContent opens the elements permitted almost anywhere to support scripts.
type ScriptSupportingContent[C any] interface {
	Script() *Script[C]
	Template() *Block[C]
	Noscript() *Transparent[C]
}

// MetadataContent opens the elements permitted in <head>.
type MetadataContent[C any] interface {
	ScriptSupportingContent[C]
	Base() *Base[C]
	Link() *Link[C]
	Meta() *Meta[C]
	Style() *StyleElement[C]
	Title() *TextOnly[C]
}

// EmbeddedContent opens elements that import another resource into the document.
type EmbeddedContent[C any] interface {
	Audio() *Media[C]
	Canvas() *Canvas[C]
	Embed() *Embed[C]
	Iframe() *Iframe[C]
	Img() *Img[C]
	Picture() *Container[C, *PictureSources]
	Video() *Media[C]
}

// InteractiveContent opens elements intended for user interaction.
type InteractiveContent[C any] interface {
	A() *A[C]
	Button() *Button[C]
	Input() *Input[C]
	Label() *Label[C]
	Select() *Select[C]
	Textarea() *Textarea[C]
}

// HeadingContent opens headings.
type HeadingContent[C any] interface {
	H1() *Inline[C]
	H2() *Inline[C]
	H3() *Inline[C]
	H4() *Inline[C]
	H5() *Inline[C]
	H6() *Inline[C]
	Hgroup() *Block[C]
}

// SectioningContent opens elements that define the scope of headings and footers.
type SectioningContent[C any] interface {
	Article() *Block[C]
	Aside() *Block[C]
	Nav() *Block[C]
	Section() *Block[C]
}

// PhrasingContent writes the text of a document and the elements that mark it up.
type PhrasingContent[C any] interface {
	TextContent[C]
	EmbeddedContent[C]
	InteractiveContent[C]
	ScriptSupportingContent[C]

	Abbr() *Inline[C]
	B() *Inline[C]
	Bdi() *Inline[C]
	Bdo() *Inline[C]
	Br() *Void[C]
	Cite() *Inline[C]
	Code() *Inline[C]
	Custom(name string) *Transparent[C]
	Data() *DataElement[C]
	Datalist() *Container[C, *DataOptions]
	Del() *Edit[C]
	Dfn() *Inline[C]
	Em() *Inline[C]
	I() *Inline[C]
	Ins() *Edit[C]
	Kbd() *Inline[C]
	Mark() *Inline[C]
	Meter() *Gauge[C]
	Output() *Output[C]
	Progress() *Gauge[C]
	Q() *Quote[C]
	S() *Inline[C]
	Samp() *Inline[C]
	Small() *Inline[C]
	Span() *Inline[C]
	Strong() *Inline[C]
	Sub() *Inline[C]
	Sup() *Inline[C]
	Time() *Time[C]
	U() *Inline[C]
	Var() *Inline[C]
	Wbr() *Void[C]
}

// FlowContent writes most of the elements used in the body of a document.
type FlowContent[C any] interface {
	PhrasingContent[C]
	HeadingContent[C]
	SectioningContent[C]

	Address() *Block[C]
	Blockquote() *Blockquote[C]
	Details() *Details[C]
	Dialog() *Dialog[C]
	Div() *Block[C]
	Dl() *Container[C, *Terms]
	Fieldset() *Fieldset[C]
	Figure() *Container[C, *Captioned]
	Footer() *Block[C]
	Form() *Form[C]
	Header() *Block[C]
	Hr() *Void[C]
	Main() *Block[C]
	Menu() *Container[C, *ListItems]
	Ol() *OrderedList[C]
	P() *Inline[C]
	Pre() *Inline[C]
	Search() *Block[C]
	Table() *Container[C, *TableParts]
	Ul() *Container[C, *ListItems]
}

// ListContent opens the items of a list.
type ListContent[C any] interface {
	ScriptSupportingContent[C]
	Li() *ListItem[C]
}

// RowContent opens the cells of a table row.
type RowContent[C any] interface {
	ScriptSupportingContent[C]
	Td() *Cell[C]
	Th() *Cell[C]
}

// RowGroupContent opens the rows of a <thead>, <tbody> or <tfoot>.
type RowGroupContent[C any] interface {
	ScriptSupportingContent[C]
	Tr() *Container[C, *Cells]
}

// TableContent opens the parts of a table.
type TableContent[C any] interface {
	RowGroupContent[C]
	Caption() *Block[C]
	Colgroup() *Colgroup[C]
	Thead() *Container[C, *Rows]
	Tbody() *Container[C, *Rows]
	Tfoot() *Container[C, *Rows]
}

var (
	_ FlowContent[*Document]                  = (*Document)(nil)
	_ MetadataContent[*Document]              = (*Document)(nil)
	_ ListContent[*Document]                  = (*Document)(nil)
	_ TableContent[*Document]                 = (*Document)(nil)
	_ RowContent[*Document]                   = (*Document)(nil)
	_ FlowContent[*Flow]                      = (*Flow)(nil)
	_ FlowContent[*Captioned]                 = (*Captioned)(nil)
	_ FlowContent[*Disclosure]                = (*Disclosure)(nil)
	_ FlowContent[*Legended]                  = (*Legended)(nil)
	_ PhrasingContent[*Phrasing]              = (*Phrasing)(nil)
	_ MetadataContent[*Metadata]              = (*Metadata)(nil)
	_ ListContent[*ListItems]                 = (*ListItems)(nil)
	_ TableContent[*TableParts]               = (*TableParts)(nil)
	_ RowGroupContent[*Rows]                  = (*Rows)(nil)
	_ RowContent[*Cells]                      = (*Cells)(nil)
	_ TextContent[*DataOptions]               = (*DataOptions)(nil)
	_ TextContent[*MediaSources]              = (*MediaSources)(nil)
	_ ScriptSupportingContent[*Terms]         = (*Terms)(nil)
	_ ScriptSupportingContent[*SelectOptions] = (*SelectOptions)(nil)
	_ ScriptSupportingContent[*GroupOptions]  = (*GroupOptions)(nil)
)

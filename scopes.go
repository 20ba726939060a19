package html

// Flow is the content of elements that permit flow content, such as <body>, <div> and <li>.
type Flow struct{ flowLeaves[*Flow] }

// Phrasing is the content of elements that permit phrasing content, such as <p>, <span> and <h1>.
type Phrasing struct{ phrasingLeaves[*Phrasing] }

// Metadata is the content of <head>.
type Metadata struct {
	commentNode[*Metadata]
	metadataFactory[*Metadata]
	scriptFactory[*Metadata]
}

// Sections is the content of <html>: a <head> and a <body>.
type Sections struct {
	commentNode[*Sections]
	sectionsFactory[*Sections]
}

// ListItems is the content of <ul>, <ol> and <menu>.
type ListItems struct {
	commentNode[*ListItems]
	listItemFactory[*ListItems]
	scriptFactory[*ListItems]
}

// Terms is the content of <dl>.
type Terms struct {
	commentNode[*Terms]
	termFactory[*Terms]
	scriptFactory[*Terms]
}

// TableParts is the content of <table>.  Rows may be written directly, without a <tbody>.
type TableParts struct {
	commentNode[*TableParts]
	tablePartFactory[*TableParts]
	rowFactory[*TableParts]
	scriptFactory[*TableParts]
}

// Rows is the content of <thead>, <tbody> and <tfoot>.
type Rows struct {
	commentNode[*Rows]
	rowFactory[*Rows]
	scriptFactory[*Rows]
}

// Cells is the content of <tr>.
type Cells struct {
	commentNode[*Cells]
	cellFactory[*Cells]
	scriptFactory[*Cells]
}

// Columns is the content of <colgroup>.
type Columns struct {
	commentNode[*Columns]
	columnFactory[*Columns]
}

// SelectOptions is the content of <select>.
type SelectOptions struct {
	commentNode[*SelectOptions]
	optionFactory[*SelectOptions]
	optgroupFactory[*SelectOptions]
	scriptFactory[*SelectOptions]
}

// GroupOptions is the content of <optgroup>.
type GroupOptions struct {
	commentNode[*GroupOptions]
	optionFactory[*GroupOptions]
	scriptFactory[*GroupOptions]
}

// DataOptions is the content of <datalist>.
type DataOptions struct {
	textNodes[*DataOptions]
	optionFactory[*DataOptions]
	scriptFactory[*DataOptions]
}

// Captioned is the content of <figure>: flow content with a <figcaption>.
type Captioned struct {
	flowLeaves[*Captioned]
	figcaptionFactory[*Captioned]
}

// Disclosure is the content of <details>: flow content with a <summary>.
type Disclosure struct {
	flowLeaves[*Disclosure]
	summaryFactory[*Disclosure]
}

// Legended is the content of <fieldset>: flow content with a <legend>.
type Legended struct {
	flowLeaves[*Legended]
	legendFactory[*Legended]
}

// MediaSources is the content of <audio> and <video>: sources, tracks and fallback text.
type MediaSources struct {
	sourceFactory[*MediaSources]
	trackFactory[*MediaSources]
	textNodes[*MediaSources]
}

// PictureSources is the content of <picture>: sources followed by an <img>.
type PictureSources struct {
	commentNode[*PictureSources]
	sourceFactory[*PictureSources]
	imageFactory[*PictureSources]
}

// scopes holds the one instance of each content model that a Document hands to element bodies.
type scopes struct {
	flow           Flow
	phrasing       Phrasing
	metadata       Metadata
	sections       Sections
	listItems      ListItems
	terms          Terms
	tableParts     TableParts
	rows           Rows
	cells          Cells
	columns        Columns
	selectOptions  SelectOptions
	groupOptions   GroupOptions
	dataOptions    DataOptions
	captioned      Captioned
	disclosure     Disclosure
	legended       Legended
	mediaSources   MediaSources
	pictureSources PictureSources
}

func (sc *scopes) bind(doc *Document) {
	sc.flow.flowLeaves = bindFlowLeaves(at(doc, &sc.flow))
	sc.phrasing.phrasingLeaves = bindPhrasingLeaves(at(doc, &sc.phrasing))

	metadata := at(doc, &sc.metadata)
	sc.metadata.commentNode = commentNode[*Metadata]{metadata}
	sc.metadata.metadataFactory = metadataFactory[*Metadata]{metadata}
	sc.metadata.scriptFactory = scriptFactory[*Metadata]{metadata}

	sections := at(doc, &sc.sections)
	sc.sections.commentNode = commentNode[*Sections]{sections}
	sc.sections.sectionsFactory = sectionsFactory[*Sections]{sections}

	listItems := at(doc, &sc.listItems)
	sc.listItems.commentNode = commentNode[*ListItems]{listItems}
	sc.listItems.listItemFactory = listItemFactory[*ListItems]{listItems}
	sc.listItems.scriptFactory = scriptFactory[*ListItems]{listItems}

	terms := at(doc, &sc.terms)
	sc.terms.commentNode = commentNode[*Terms]{terms}
	sc.terms.termFactory = termFactory[*Terms]{terms}
	sc.terms.scriptFactory = scriptFactory[*Terms]{terms}

	tableParts := at(doc, &sc.tableParts)
	sc.tableParts.commentNode = commentNode[*TableParts]{tableParts}
	sc.tableParts.tablePartFactory = tablePartFactory[*TableParts]{tableParts}
	sc.tableParts.rowFactory = rowFactory[*TableParts]{tableParts}
	sc.tableParts.scriptFactory = scriptFactory[*TableParts]{tableParts}

	rows := at(doc, &sc.rows)
	sc.rows.commentNode = commentNode[*Rows]{rows}
	sc.rows.rowFactory = rowFactory[*Rows]{rows}
	sc.rows.scriptFactory = scriptFactory[*Rows]{rows}

	cells := at(doc, &sc.cells)
	sc.cells.commentNode = commentNode[*Cells]{cells}
	sc.cells.cellFactory = cellFactory[*Cells]{cells}
	sc.cells.scriptFactory = scriptFactory[*Cells]{cells}

	columns := at(doc, &sc.columns)
	sc.columns.commentNode = commentNode[*Columns]{columns}
	sc.columns.columnFactory = columnFactory[*Columns]{columns}

	selectOptions := at(doc, &sc.selectOptions)
	sc.selectOptions.commentNode = commentNode[*SelectOptions]{selectOptions}
	sc.selectOptions.optionFactory = optionFactory[*SelectOptions]{selectOptions}
	sc.selectOptions.optgroupFactory = optgroupFactory[*SelectOptions]{selectOptions}
	sc.selectOptions.scriptFactory = scriptFactory[*SelectOptions]{selectOptions}

	groupOptions := at(doc, &sc.groupOptions)
	sc.groupOptions.commentNode = commentNode[*GroupOptions]{groupOptions}
	sc.groupOptions.optionFactory = optionFactory[*GroupOptions]{groupOptions}
	sc.groupOptions.scriptFactory = scriptFactory[*GroupOptions]{groupOptions}

	dataOptions := at(doc, &sc.dataOptions)
	sc.dataOptions.textNodes = textNodes[*DataOptions]{dataOptions}
	sc.dataOptions.optionFactory = optionFactory[*DataOptions]{dataOptions}
	sc.dataOptions.scriptFactory = scriptFactory[*DataOptions]{dataOptions}

	captioned := at(doc, &sc.captioned)
	sc.captioned.flowLeaves = bindFlowLeaves(captioned)
	sc.captioned.figcaptionFactory = figcaptionFactory[*Captioned]{captioned}

	disclosure := at(doc, &sc.disclosure)
	sc.disclosure.flowLeaves = bindFlowLeaves(disclosure)
	sc.disclosure.summaryFactory = summaryFactory[*Disclosure]{disclosure}

	legended := at(doc, &sc.legended)
	sc.legended.flowLeaves = bindFlowLeaves(legended)
	sc.legended.legendFactory = legendFactory[*Legended]{legended}

	mediaSources := at(doc, &sc.mediaSources)
	sc.mediaSources.sourceFactory = sourceFactory[*MediaSources]{mediaSources}
	sc.mediaSources.trackFactory = trackFactory[*MediaSources]{mediaSources}
	sc.mediaSources.textNodes = textNodes[*MediaSources]{mediaSources}

	pictureSources := at(doc, &sc.pictureSources)
	sc.pictureSources.commentNode = commentNode[*PictureSources]{pictureSources}
	sc.pictureSources.sourceFactory = sourceFactory[*PictureSources]{pictureSources}
	sc.pictureSources.imageFactory = imageFactory[*PictureSources]{pictureSources}
}

func flowOf(doc *Document) *Flow                     { return &doc.scopes.flow }
func phrasingOf(doc *Document) *Phrasing             { return &doc.scopes.phrasing }
func metadataOf(doc *Document) *Metadata             { return &doc.scopes.metadata }
func sectionsOf(doc *Document) *Sections             { return &doc.scopes.sections }
func listItemsOf(doc *Document) *ListItems           { return &doc.scopes.listItems }
func termsOf(doc *Document) *Terms                   { return &doc.scopes.terms }
func tablePartsOf(doc *Document) *TableParts         { return &doc.scopes.tableParts }
func rowsOf(doc *Document) *Rows                     { return &doc.scopes.rows }
func cellsOf(doc *Document) *Cells                   { return &doc.scopes.cells }
func columnsOf(doc *Document) *Columns               { return &doc.scopes.columns }
func selectOptionsOf(doc *Document) *SelectOptions   { return &doc.scopes.selectOptions }
func groupOptionsOf(doc *Document) *GroupOptions     { return &doc.scopes.groupOptions }
func dataOptionsOf(doc *Document) *DataOptions       { return &doc.scopes.dataOptions }
func captionedOf(doc *Document) *Captioned           { return &doc.scopes.captioned }
func disclosureOf(doc *Document) *Disclosure         { return &doc.scopes.disclosure }
func legendedOf(doc *Document) *Legended             { return &doc.scopes.legended }
func mediaSourcesOf(doc *Document) *MediaSources     { return &doc.scopes.mediaSources }
func pictureSourcesOf(doc *Document) *PictureSources { return &doc.scopes.pictureSources }

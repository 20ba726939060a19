package html

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/swdunlop/fluent-html-go/encode"
)

// An Attr is a name and value pair, used to apply attributes computed at runtime, such as those parsed by the
// tag package.
type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// attrs writes attributes into the pending start tag of an element and returns the element, E, so calls chain.
// The attribute mixins below embed it; each element type embeds the mixins for the attributes it accepts.
type attrs[E any] struct {
	doc  *Document
	id   uint64
	tag  string
	self E
}

func bindAttrs[P, E any](el element[P], self E) attrs[E] {
	return attrs[E]{doc: el.s.doc, id: el.id, tag: el.name, self: self}
}

func (a attrs[E]) set(name, value string) E {
	a.doc.attr(a.id, a.tag, name, value, encode.Attribute)
	return a.self
}

func (a attrs[E]) setURL(name, value string) E {
	a.doc.attr(a.id, a.tag, name, value, encode.URL)
	return a.self
}

func (a attrs[E]) setFlag(name string) E {
	a.doc.flag(a.id, a.tag, name)
	return a.self
}

func (a attrs[E]) setInt(name string, value int) E {
	return a.set(name, strconv.Itoa(value))
}

func (a attrs[E]) setFloat(name string, value float64) E {
	return a.set(name, strconv.FormatFloat(value, 'g', -1, 64))
}

// globalAttrs are the attributes every element accepts.
type globalAttrs[E any] struct{ attrs[E] }

// ID sets the id attribute.
func (m globalAttrs[E]) ID(id string) E { return m.set(`id`, id) }

// Class sets the class attribute to the classes, separated by spaces.
func (m globalAttrs[E]) Class(classes ...string) E { return m.set(`class`, strings.Join(classes, ` `)) }

// Style sets the style attribute.
func (m globalAttrs[E]) Style(css string) E { return m.set(`style`, css) }

// Title sets the title attribute, usually shown as a tooltip.
func (m globalAttrs[E]) Title(title string) E { return m.set(`title`, title) }

// Lang sets the lang attribute to a BCP 47 language tag.
func (m globalAttrs[E]) Lang(tag string) E { return m.set(`lang`, tag) }

// Dir sets the dir attribute.
func (m globalAttrs[E]) Dir(dir Dir) E { return m.set(`dir`, string(dir)) }

// Hidden sets the hidden attribute.
func (m globalAttrs[E]) Hidden() E { return m.setFlag(`hidden`) }

// TabIndex sets the tabindex attribute.
func (m globalAttrs[E]) TabIndex(index int) E { return m.setInt(`tabindex`, index) }

// AccessKey sets the accesskey attribute.
func (m globalAttrs[E]) AccessKey(key string) E { return m.set(`accesskey`, key) }

// Role sets the ARIA role attribute.
func (m globalAttrs[E]) Role(role string) E { return m.set(`role`, role) }

// Data sets a data-* attribute; the key must already be in the lower-case, hyphenated form.
func (m globalAttrs[E]) Data(key, value string) E { return m.set(`data-`+key, value) }

// Aria sets an aria-* attribute, such as Aria(`label`, `Close`).
func (m globalAttrs[E]) Aria(key, value string) E { return m.set(`aria-`+key, value) }

// On sets an event handler attribute, such as On(`click`, `toggle()`) for onclick.
func (m globalAttrs[E]) On(event, script string) E { return m.set(`on`+event, script) }

// Attr sets any attribute by name.  The name is written as given and must be a valid attribute name.
func (m globalAttrs[E]) Attr(name, value string) E { return m.set(name, value) }

// Flag sets any boolean attribute by name.
func (m globalAttrs[E]) Flag(name string) E { return m.setFlag(name) }

// AttrFunc sets an attribute to the value returned by supply.  A nil supply, or an empty result, writes
// nothing.
func (m globalAttrs[E]) AttrFunc(name string, supply func() string) E {
	if supply == nil {
		return m.self
	}
	if value := supply(); value != `` {
		return m.set(name, value)
	}
	return m.self
}

// AttrWith sets an attribute to whatever fn writes; the writes are encoded as they happen.  A nil fn writes
// nothing.
func (m globalAttrs[E]) AttrWith(name string, fn func(w io.Writer)) E {
	if fn == nil {
		return m.self
	}
	m.doc.attrWith(m.id, m.tag, name, fn)
	return m.self
}

// Attrs sets each of the attributes in order.
func (m globalAttrs[E]) Attrs(attrs ...Attr) E {
	for _, attr := range attrs {
		m.set(attr.Name, attr.Value)
	}
	return m.self
}

// Dir is the text direction of an element's content.
type Dir string

const (
	DirLTR  Dir = `ltr`
	DirRTL  Dir = `rtl`
	DirAuto Dir = `auto`
)

type nameAttr[E any] struct{ attrs[E] }

// Name sets the name attribute.
func (m nameAttr[E]) Name(name string) E { return m.set(`name`, name) }

type valueAttr[E any] struct{ attrs[E] }

// Value sets the value attribute.
func (m valueAttr[E]) Value(value string) E { return m.set(`value`, value) }

type disabledAttr[E any] struct{ attrs[E] }

// Disabled sets the disabled attribute.
func (m disabledAttr[E]) Disabled() E { return m.setFlag(`disabled`) }

type requiredAttr[E any] struct{ attrs[E] }

// Required sets the required attribute.
func (m requiredAttr[E]) Required() E { return m.setFlag(`required`) }

type readonlyAttr[E any] struct{ attrs[E] }

// ReadOnly sets the readonly attribute.
func (m readonlyAttr[E]) ReadOnly() E { return m.setFlag(`readonly`) }

type placeholderAttr[E any] struct{ attrs[E] }

// Placeholder sets the placeholder attribute.
func (m placeholderAttr[E]) Placeholder(text string) E { return m.set(`placeholder`, text) }

type autocompleteAttr[E any] struct{ attrs[E] }

// Autocomplete sets the autocomplete attribute, such as "off" or "email".
func (m autocompleteAttr[E]) Autocomplete(hint string) E { return m.set(`autocomplete`, hint) }

type multipleAttr[E any] struct{ attrs[E] }

// Multiple sets the multiple attribute.
func (m multipleAttr[E]) Multiple() E { return m.setFlag(`multiple`) }

type srcAttr[E any] struct{ attrs[E] }

// Src sets the src attribute.
func (m srcAttr[E]) Src(url string) E { return m.setURL(`src`, url) }

type typeAttr[E any] struct{ attrs[E] }

// Type sets the type attribute, usually a MIME type.
func (m typeAttr[E]) Type(mimeType string) E { return m.set(`type`, mimeType) }

type dimensionAttrs[E any] struct{ attrs[E] }

// Width sets the width attribute in CSS pixels.
func (m dimensionAttrs[E]) Width(px int) E { return m.setInt(`width`, px) }

// Height sets the height attribute in CSS pixels.
func (m dimensionAttrs[E]) Height(px int) E { return m.setInt(`height`, px) }

type citeAttr[E any] struct{ attrs[E] }

// Cite sets the cite attribute to the URL of the source.
func (m citeAttr[E]) Cite(url string) E { return m.setURL(`cite`, url) }

type datetimeAttr[E any] struct{ attrs[E] }

// Datetime sets the datetime attribute from t, in RFC 3339 format.
func (m datetimeAttr[E]) Datetime(t time.Time) E { return m.set(`datetime`, t.Format(time.RFC3339)) }

// DatetimeString sets the datetime attribute verbatim, for dates, durations and other forms HTML permits.
func (m datetimeAttr[E]) DatetimeString(value string) E { return m.set(`datetime`, value) }

type openAttr[E any] struct{ attrs[E] }

// Open sets the open attribute.
func (m openAttr[E]) Open() E { return m.setFlag(`open`) }

type labelAttr[E any] struct{ attrs[E] }

// Label sets the label attribute.
func (m labelAttr[E]) Label(label string) E { return m.set(`label`, label) }

type forAttr[E any] struct{ attrs[E] }

// For sets the for attribute to the id of the associated control, or ids for <output>.
func (m forAttr[E]) For(ids ...string) E { return m.set(`for`, strings.Join(ids, ` `)) }

type mediaQueryAttr[E any] struct{ attrs[E] }

// Media sets the media attribute to a media query.
func (m mediaQueryAttr[E]) Media(query string) E { return m.set(`media`, query) }

type spanAttr[E any] struct{ attrs[E] }

// Span sets the number of columns spanned.
func (m spanAttr[E]) Span(columns int) E { return m.setInt(`span`, columns) }

type fetchAttrs[E any] struct{ attrs[E] }

// Integrity sets the subresource integrity hash.
func (m fetchAttrs[E]) Integrity(hash string) E { return m.set(`integrity`, hash) }

// CrossOrigin sets the crossorigin attribute, such as "anonymous" or "use-credentials".
func (m fetchAttrs[E]) CrossOrigin(mode string) E { return m.set(`crossorigin`, mode) }

// ReferrerPolicy sets the referrerpolicy attribute, such as "no-referrer".
func (m fetchAttrs[E]) ReferrerPolicy(policy string) E { return m.set(`referrerpolicy`, policy) }

type hyperlinkAttrs[E any] struct{ attrs[E] }

// Href sets the href attribute.
func (m hyperlinkAttrs[E]) Href(url string) E { return m.setURL(`href`, url) }

// Target sets the browsing context for the link, such as "_blank".
func (m hyperlinkAttrs[E]) Target(target string) E { return m.set(`target`, target) }

// Rel sets the relationship of the linked resource, such as "noopener".
func (m hyperlinkAttrs[E]) Rel(rels ...string) E { return m.set(`rel`, strings.Join(rels, ` `)) }

// Hreflang sets the language of the linked resource.
func (m hyperlinkAttrs[E]) Hreflang(tag string) E { return m.set(`hreflang`, tag) }

// Download asks the browser to download the resource, saving it as filename if it is not empty.
func (m hyperlinkAttrs[E]) Download(filename string) E {
	if filename == `` {
		return m.setFlag(`download`)
	}
	return m.set(`download`, filename)
}

// ReferrerPolicy sets the referrerpolicy attribute.
func (m hyperlinkAttrs[E]) ReferrerPolicy(policy string) E { return m.set(`referrerpolicy`, policy) }

type linkAttrs[E any] struct{ attrs[E] }

// Href sets the URL of the linked resource.
func (m linkAttrs[E]) Href(url string) E { return m.setURL(`href`, url) }

// Rel sets the relationship, such as "stylesheet" or "icon".
func (m linkAttrs[E]) Rel(rels ...string) E { return m.set(`rel`, strings.Join(rels, ` `)) }

// Hreflang sets the language of the linked resource.
func (m linkAttrs[E]) Hreflang(tag string) E { return m.set(`hreflang`, tag) }

// Sizes sets the sizes of an icon, such as "32x32".
func (m linkAttrs[E]) Sizes(sizes string) E { return m.set(`sizes`, sizes) }

// As sets the destination of a preload, such as "font" or "script".
func (m linkAttrs[E]) As(destination string) E { return m.set(`as`, destination) }

type baseAttrs[E any] struct{ attrs[E] }

// Href sets the base URL of the document.
func (m baseAttrs[E]) Href(url string) E { return m.setURL(`href`, url) }

// Target sets the default browsing context for links.
func (m baseAttrs[E]) Target(target string) E { return m.set(`target`, target) }

type metaAttrs[E any] struct{ attrs[E] }

// Content sets the value of the metadata.
func (m metaAttrs[E]) Content(content string) E { return m.set(`content`, content) }

// HTTPEquiv sets the http-equiv attribute.
func (m metaAttrs[E]) HTTPEquiv(header string) E { return m.set(`http-equiv`, header) }

// Charset sets the charset attribute.  Use Document.Charset for the charset the document is written in.
func (m metaAttrs[E]) Charset(charset string) E { return m.set(`charset`, charset) }

// Property sets the property attribute used by Open Graph metadata.
func (m metaAttrs[E]) Property(property string) E { return m.set(`property`, property) }

type scriptAttrs[E any] struct{ attrs[E] }

// Async sets the async attribute.
func (m scriptAttrs[E]) Async() E { return m.setFlag(`async`) }

// Defer sets the defer attribute.
func (m scriptAttrs[E]) Defer() E { return m.setFlag(`defer`) }

// NoModule sets the nomodule attribute.
func (m scriptAttrs[E]) NoModule() E { return m.setFlag(`nomodule`) }

type imgAttrs[E any] struct{ attrs[E] }

// Alt sets the text alternative of the image.
func (m imgAttrs[E]) Alt(text string) E { return m.set(`alt`, text) }

// Srcset sets the candidate images for responsive selection.
func (m imgAttrs[E]) Srcset(candidates string) E { return m.set(`srcset`, candidates) }

// Sizes sets the sizes attribute used with Srcset.
func (m imgAttrs[E]) Sizes(sizes string) E { return m.set(`sizes`, sizes) }

// Loading sets the loading attribute, "lazy" or "eager".
func (m imgAttrs[E]) Loading(mode string) E { return m.set(`loading`, mode) }

// Decoding sets the decoding attribute, "sync", "async" or "auto".
func (m imgAttrs[E]) Decoding(mode string) E { return m.set(`decoding`, mode) }

type sourceAttrs[E any] struct{ attrs[E] }

// Srcset sets the candidate images of a <picture> source.
func (m sourceAttrs[E]) Srcset(candidates string) E { return m.set(`srcset`, candidates) }

// Sizes sets the sizes attribute used with Srcset.
func (m sourceAttrs[E]) Sizes(sizes string) E { return m.set(`sizes`, sizes) }

type trackAttrs[E any] struct{ attrs[E] }

// Kind sets the kind of track, such as "subtitles" or "captions".
func (m trackAttrs[E]) Kind(kind string) E { return m.set(`kind`, kind) }

// Srclang sets the language of the track.
func (m trackAttrs[E]) Srclang(tag string) E { return m.set(`srclang`, tag) }

// Default marks the track as enabled unless the user's preferences say otherwise.
func (m trackAttrs[E]) Default() E { return m.setFlag(`default`) }

type mediaAttrs[E any] struct{ attrs[E] }

// Controls sets the controls attribute.
func (m mediaAttrs[E]) Controls() E { return m.setFlag(`controls`) }

// Autoplay sets the autoplay attribute.
func (m mediaAttrs[E]) Autoplay() E { return m.setFlag(`autoplay`) }

// Loop sets the loop attribute.
func (m mediaAttrs[E]) Loop() E { return m.setFlag(`loop`) }

// Muted sets the muted attribute.
func (m mediaAttrs[E]) Muted() E { return m.setFlag(`muted`) }

// Preload sets the preload hint, "none", "metadata" or "auto".
func (m mediaAttrs[E]) Preload(hint string) E { return m.set(`preload`, hint) }

// Poster sets the image shown before a video plays.
func (m mediaAttrs[E]) Poster(url string) E { return m.setURL(`poster`, url) }

// PlaysInline sets the playsinline attribute.
func (m mediaAttrs[E]) PlaysInline() E { return m.setFlag(`playsinline`) }

type iframeAttrs[E any] struct{ attrs[E] }

// Srcdoc sets the document shown in the frame.  The markup is encoded as an attribute value.
func (m iframeAttrs[E]) Srcdoc(markup string) E { return m.set(`srcdoc`, markup) }

// Sandbox sets the sandbox attribute with the given permissions; none means fully sandboxed.
func (m iframeAttrs[E]) Sandbox(permissions ...string) E {
	return m.set(`sandbox`, strings.Join(permissions, ` `))
}

// Allow sets the permissions policy of the frame.
func (m iframeAttrs[E]) Allow(policy string) E { return m.set(`allow`, policy) }

// Loading sets the loading attribute, "lazy" or "eager".
func (m iframeAttrs[E]) Loading(mode string) E { return m.set(`loading`, mode) }

// ReferrerPolicy sets the referrerpolicy attribute.
func (m iframeAttrs[E]) ReferrerPolicy(policy string) E { return m.set(`referrerpolicy`, policy) }

type formAttrs[E any] struct{ attrs[E] }

// Action sets the URL the form submits to.
func (m formAttrs[E]) Action(url string) E { return m.setURL(`action`, url) }

// Method sets the submission method.
func (m formAttrs[E]) Method(method FormMethod) E { return m.set(`method`, string(method)) }

// Enctype sets the encoding of the submission, such as "multipart/form-data".
func (m formAttrs[E]) Enctype(mimeType string) E { return m.set(`enctype`, mimeType) }

// NoValidate sets the novalidate attribute.
func (m formAttrs[E]) NoValidate() E { return m.setFlag(`novalidate`) }

// Target sets the browsing context that receives the response.
func (m formAttrs[E]) Target(target string) E { return m.set(`target`, target) }

// FormMethod is the HTTP method of a form submission.
type FormMethod string

const (
	MethodGet    FormMethod = `get`
	MethodPost   FormMethod = `post`
	MethodDialog FormMethod = `dialog`
)

type inputAttrs[E any] struct{ attrs[E] }

// Type sets the kind of control.
func (m inputAttrs[E]) Type(kind InputType) E { return m.set(`type`, string(kind)) }

// Checked sets the checked attribute.
func (m inputAttrs[E]) Checked() E { return m.setFlag(`checked`) }

// Autofocus sets the autofocus attribute.
func (m inputAttrs[E]) Autofocus() E { return m.setFlag(`autofocus`) }

// Min sets the minimum value; numbers, dates and times are all given as strings.
func (m inputAttrs[E]) Min(value string) E { return m.set(`min`, value) }

// Max sets the maximum value.
func (m inputAttrs[E]) Max(value string) E { return m.set(`max`, value) }

// Step sets the step attribute, a number or "any".
func (m inputAttrs[E]) Step(step string) E { return m.set(`step`, step) }

// Pattern sets the regular expression the value must match.
func (m inputAttrs[E]) Pattern(pattern string) E { return m.set(`pattern`, pattern) }

// MinLength sets the minimum length of the value.
func (m inputAttrs[E]) MinLength(n int) E { return m.setInt(`minlength`, n) }

// MaxLength sets the maximum length of the value.
func (m inputAttrs[E]) MaxLength(n int) E { return m.setInt(`maxlength`, n) }

// Size sets the width of the control in characters.
func (m inputAttrs[E]) Size(n int) E { return m.setInt(`size`, n) }

// List sets the id of a <datalist> with suggestions.
func (m inputAttrs[E]) List(id string) E { return m.set(`list`, id) }

// Accept sets the file types accepted by a file input.
func (m inputAttrs[E]) Accept(types ...string) E { return m.set(`accept`, strings.Join(types, `,`)) }

// InputType is the type attribute of an <input>.
type InputType string

const (
	InputButton   InputType = `button`
	InputCheckbox InputType = `checkbox`
	InputColor    InputType = `color`
	InputDate     InputType = `date`
	InputDateTime InputType = `datetime-local`
	InputEmail    InputType = `email`
	InputFile     InputType = `file`
	InputHidden   InputType = `hidden`
	InputImage    InputType = `image`
	InputMonth    InputType = `month`
	InputNumber   InputType = `number`
	InputPassword InputType = `password`
	InputRadio    InputType = `radio`
	InputRange    InputType = `range`
	InputReset    InputType = `reset`
	InputSearch   InputType = `search`
	InputSubmit   InputType = `submit`
	InputTel      InputType = `tel`
	InputText     InputType = `text`
	InputTime     InputType = `time`
	InputURL      InputType = `url`
	InputWeek     InputType = `week`
)

type buttonAttrs[E any] struct{ attrs[E] }

// Type sets what the button does when pressed.
func (m buttonAttrs[E]) Type(kind ButtonType) E { return m.set(`type`, string(kind)) }

// FormAction overrides the action of the form the button submits.
func (m buttonAttrs[E]) FormAction(url string) E { return m.setURL(`formaction`, url) }

// ButtonType is the type attribute of a <button>.
type ButtonType string

const (
	ButtonSubmit ButtonType = `submit`
	ButtonReset  ButtonType = `reset`
	ButtonButton ButtonType = `button`
)

type textareaAttrs[E any] struct{ attrs[E] }

// Rows sets the visible number of lines.
func (m textareaAttrs[E]) Rows(n int) E { return m.setInt(`rows`, n) }

// Cols sets the visible width in characters.
func (m textareaAttrs[E]) Cols(n int) E { return m.setInt(`cols`, n) }

// Wrap sets how the value is wrapped when submitted, "soft" or "hard".
func (m textareaAttrs[E]) Wrap(mode string) E { return m.set(`wrap`, mode) }

// MaxLength sets the maximum length of the value.
func (m textareaAttrs[E]) MaxLength(n int) E { return m.setInt(`maxlength`, n) }

type selectAttrs[E any] struct{ attrs[E] }

// Size sets the number of visible options.
func (m selectAttrs[E]) Size(n int) E { return m.setInt(`size`, n) }

type optionAttrs[E any] struct{ attrs[E] }

// Selected sets the selected attribute.
func (m optionAttrs[E]) Selected() E { return m.setFlag(`selected`) }

type cellAttrs[E any] struct{ attrs[E] }

// Colspan sets the number of columns the cell spans.
func (m cellAttrs[E]) Colspan(n int) E { return m.setInt(`colspan`, n) }

// Rowspan sets the number of rows the cell spans.
func (m cellAttrs[E]) Rowspan(n int) E { return m.setInt(`rowspan`, n) }

// Headers sets the ids of the header cells for this cell.
func (m cellAttrs[E]) Headers(ids ...string) E { return m.set(`headers`, strings.Join(ids, ` `)) }

// Scope sets which cells a header cell applies to: "row", "col", "rowgroup" or "colgroup".  It is only
// meaningful on <th>.
func (m cellAttrs[E]) Scope(scope string) E { return m.set(`scope`, scope) }

// Abbr sets an abbreviated label for a header cell.
func (m cellAttrs[E]) Abbr(label string) E { return m.set(`abbr`, label) }

type orderedListAttrs[E any] struct{ attrs[E] }

// Start sets the ordinal of the first item.
func (m orderedListAttrs[E]) Start(n int) E { return m.setInt(`start`, n) }

// Reversed numbers the items in descending order.
func (m orderedListAttrs[E]) Reversed() E { return m.setFlag(`reversed`) }

// Type sets the numbering style: "1", "a", "A", "i" or "I".
func (m orderedListAttrs[E]) Type(style string) E { return m.set(`type`, style) }

type ordinalAttr[E any] struct{ attrs[E] }

// Value sets the ordinal of a list item.
func (m ordinalAttr[E]) Value(n int) E { return m.setInt(`value`, n) }

type rangeAttrs[E any] struct{ attrs[E] }

// Value sets the current value.
func (m rangeAttrs[E]) Value(v float64) E { return m.setFloat(`value`, v) }

// Min sets the lower bound.
func (m rangeAttrs[E]) Min(v float64) E { return m.setFloat(`min`, v) }

// Max sets the upper bound.
func (m rangeAttrs[E]) Max(v float64) E { return m.setFloat(`max`, v) }

// Low sets the upper bound of the low range of a meter.
func (m rangeAttrs[E]) Low(v float64) E { return m.setFloat(`low`, v) }

// High sets the lower bound of the high range of a meter.
func (m rangeAttrs[E]) High(v float64) E { return m.setFloat(`high`, v) }

// Optimum sets the optimal value of a meter.
func (m rangeAttrs[E]) Optimum(v float64) E { return m.setFloat(`optimum`, v) }

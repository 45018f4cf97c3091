package i18n

import "text/template"

// FuncMap returns template bindings for the translator under the
// conventional short names:
//
//	t    — translate a key: {{t "greeting"}}
//	tc   — translate with a count: {{tc "cats" 3}}
//	n    — format a number, optionally through a registered alias
//	d    — format a date and time, optionally through a registered alias
//	date — format only the date component
//	time — format only the time component
//
// Template functions cannot propagate errors mid-render, so the empty-key
// hard failure renders as an empty string here. The map works with both
// text/template and html/template.
func (tr *Translator) FuncMap() template.FuncMap {
	return template.FuncMap{
		"t": func(key string, params ...Params) string {
			s, err := tr.T(key, params...)
			if err != nil {
				return ""
			}
			return s
		},
		"tc": func(key string, count any, params ...Params) string {
			n, ok := toFloat(count)
			if !ok {
				n = 1
			}
			s, err := tr.Tn(key, n, params...)
			if err != nil {
				return ""
			}
			return s
		},
		"n": func(value any, alias ...string) string {
			if len(alias) > 0 {
				return tr.N(value, NumberAlias(alias[0]))
			}
			return tr.N(value)
		},
		"d": func(value any, alias ...string) string {
			if len(alias) > 0 {
				return tr.D(value, DateAlias(alias[0]))
			}
			return tr.D(value)
		},
		"date": func(value any, alias ...string) string {
			if len(alias) > 0 {
				return tr.Date(value, DateAlias(alias[0]))
			}
			return tr.Date(value)
		},
		"time": func(value any, alias ...string) string {
			if len(alias) > 0 {
				return tr.Time(value, DateAlias(alias[0]))
			}
			return tr.Time(value)
		},
	}
}

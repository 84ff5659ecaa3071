package main

import (
	"fmt"
	"strings"

	"fahrplan/internal/query"
)

var examples = []string{
	"fahrplan from thun to burgdorf",
	"fahrplan via bern nach basel von zürich, helvetiaplatz ab 15:35",
	"fahrplan de lausanne à vevey arrivée minuit",
}

func helpText(flagUsages string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %s\n\n", name, description)
	fmt.Fprintf(&b, "Usage:\n %s [options] arguments\n\n", name)
	fmt.Fprintf(&b, "Options:\n%s\n", flagUsages)

	b.WriteString("Arguments:\n")
	b.WriteString(" You can use natural language arguments using the following\n")
	b.WriteString(" keywords in your desired language:\n")
	for _, lang := range query.Languages() {
		kw, err := query.KeywordsFor(lang)
		if err != nil {
			continue
		}
		spellings := make([]string, 0, 5)
		for _, f := range []query.Field{query.FieldFrom, query.FieldTo, query.FieldVia, query.FieldDeparture, query.FieldArrival} {
			spellings = append(spellings, kw.Spelling(f))
		}
		fmt.Fprintf(&b, " %s -- %s\n", lang, strings.Join(spellings, ", "))
	}
	b.WriteString("\n")
	b.WriteString(" You can also use natural time specifications in your language, like \"now\",\n")
	b.WriteString(" \"immediately\", \"noon\" or \"midnight\".\n\n")

	b.WriteString("Examples:\n")
	for _, e := range examples {
		fmt.Fprintf(&b, " %s\n", e)
	}
	return b.String()
}

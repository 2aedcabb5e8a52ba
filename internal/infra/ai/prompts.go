package ai

import (
	"fmt"
	"strings"

	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/entity"
)

const extractionInstruction = `You are given exhibition lead data: either a photographed table or pasted spreadsheet text.
Extract every lead as a JSON array. For each lead fill these keys:
company, representative, phone, email, country, website, notes.
Copy phone numbers exactly as written, including separators when a cell holds several numbers.
Use an empty string for anything that is not present. Do not invent data.
Put any leftover free text that belongs to the lead into notes.`

func draftPrompt(genCtx entity.GenerationContext, c entity.Customer, lang entity.Language) string {
	language := "English"
	if lang == entity.LanguageTurkish {
		language = "Turkish"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Write a short, warm B2B follow-up for a lead we met at %s", orDefault(genCtx.EventName, "a trade fair"))
	if genCtx.EventLocation != "" {
		fmt.Fprintf(&b, " in %s", genCtx.EventLocation)
	}
	fmt.Fprintf(&b, ". We are %s.\n\n", orDefault(genCtx.SenderOrg, "the exhibitor"))

	b.WriteString("Lead details:\n")
	writeDetail(&b, "Company", c.Company)
	writeDetail(&b, "Representative", c.Representative)
	writeDetail(&b, "Country", c.Country)
	writeDetail(&b, "Website", c.Website)
	writeDetail(&b, "Notes", c.Notes)

	fmt.Fprintf(&b, "\nWrite everything in %s.\n", language)
	b.WriteString(`Return JSON with exactly these keys:
subject: an email subject line.
email_body: the full email body, plain text, with a greeting and sign-off.
chat_body: the same message reworked for a chat app, informal, split into short lines separated by literal newlines so each line renders as its own bubble.`)

	return b.String()
}

func writeDetail(b *strings.Builder, label, value string) {
	if value != "" {
		fmt.Fprintf(b, "- %s: %s\n", label, value)
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

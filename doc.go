// Package screening screens a named entity (person, company, organization)
// for adverse public information. It delegates a search-and-summarize task
// to an external AI agent with web-search capability, recovers a structured
// risk report from the agent's free-form output, and keeps a bounded
// most-recent-first history of past screenings.
//
// The single inbound operation is Screener.Screen. Invalid input is the only
// condition surfaced as an error; every other path, including transport
// failures, yields a well-formed report.ScreeningResult.
//
// Example usage:
//
//	s := screening.New()
//	res, err := s.Screen(ctx, "Acme Corp", "comprehensive", llm.Credential{APIKey: key})
//	if err != nil {
//		// empty entity or unknown search mode
//	}
//	out, _ := report.Export(res)
package screening

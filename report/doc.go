// Package report defines the screening data model: the screening request,
// the structured screening result with its findings, the risk and severity
// enumerations, the tolerant extractor that recovers a result from raw agent
// output, and the canonical JSON export format.
package report

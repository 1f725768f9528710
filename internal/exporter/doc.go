// Package exporter writes the derived supply-demand tables to the reports
// directory in CSV, JSON, and XLSX form. It is the boundary the presentation
// layer (charts, spreadsheets) consumes; nothing here feeds back into the
// pipeline.
package exporter

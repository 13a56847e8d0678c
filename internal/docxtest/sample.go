package docxtest

// SampleReport returns the body of an English meeting-minutes report for
// meeting 12 held on 11/02/2026. It has, in order: the metadata table with
// its attendance matrix, the next meeting paragraphs, an info exchange
// table, a planning table, a subject table with the section name in its
// header and a subject table with a merged section title row.
func SampleReport() string {
	return SampleMetadata() +
		Para("Next meeting:") +
		Para("25/02/2026 at 11:00 – On site") +
		Para("") +
		SampleInfoExchange() +
		SamplePlanning() +
		SampleArchitecture() +
		SampleInstallations()
}

// SampleMetadata returns the metadata table of SampleReport.
func SampleMetadata() string {
	return TableGrid(10,
		Row(SpanCell(10, Para("MINUTES OF MEETING"))),
		Row(
			SpanCell(6, P(R("Minutes of meeting n° "), R("1"), R("2"))),
			SpanCell(4, Para("11/02/2026")),
		),
		Row(
			SpanCell(6, Para("Location: Penta Hotel, Brussels")),
			SpanCell(4, Para("Room 4")),
		),
		Row(SpanCell(10, Para("Distribution on 13/02/2026"))),
		Row(
			Lines("Company"), Lines("P"), Lines("E"), Lines("I"), Lines("D"),
			Lines("Company"), Lines("P"), Lines("E"), Lines("I"), Lines("D"),
		),
		Row(
			Lines("MO – Penta Hotel", "John Smith", "Anna Lee"),
			Lines("", "X", ""),
			Lines("", "", "X"),
			Lines(""),
			Lines("", "X", "X"),
			Lines("Architect – Studio A", "Marc Dubois"),
			Lines("", "X"),
			Lines(""),
			Lines(""),
			Lines("", "x"),
		),
	)
}

// SampleInfoExchange returns an info exchange table with a shaded header.
func SampleInfoExchange() string {
	return TableGrid(4,
		HeaderRow(
			ShadedCell("D9D9D9", P(B("From whom"))),
			ShadedCell("D9D9D9", P(B("Status"))),
			ShadedCell("D9D9D9", P(B("Content"))),
			ShadedCell("D9D9D9", P(B("Due date"))),
		),
		Row(Lines("MO"), Lines("Open"), Lines("Send updated plans"), Lines("20/02/2026")),
	)
}

// SamplePlanning returns a one-column planning table.
func SamplePlanning() string {
	return TableGrid(1,
		Row(ShadedCell("D9D9D9", P(B("Planning")))),
		Row(Cell(P(B("Phase 1 works")))),
		Row(Lines("Phase 2 tender")),
	)
}

// SampleArchitecture returns a subject table for section "Architecture"
// with points 07.01 and 07.02, followed by an empty row and a notes row.
func SampleArchitecture() string {
	return TableGrid(5,
		Row(
			ShadedCell("BFBFBF", P(B("N°"))),
			ShadedCell("BFBFBF", P(B("Title"))),
			ShadedCell("BFBFBF", P(B("Subject – Architecture"))),
			ShadedCell("BFBFBF", P(B("For whom"))),
			ShadedCell("BFBFBF", P(B("Due"))),
		),
		Row(
			Lines("07.01"),
			Lines("Facade"),
			Lines("Meeting 28/01/2026", "Cladding samples approved"),
			Lines("", "MO"),
			Lines("", "ASAP"),
		),
		Row(
			Lines("07.02"),
			Lines("Roof"),
			Cell(
				P(NB("Meeting 28/01/2026")),
				P(R("Waterproofing detail pending")),
				P(B("Meeting 11/02/2026")),
				P(B("Membrane "), B("delivered")),
			),
			Lines("Contractor"),
			Lines(""),
		),
		Row(Lines(""), Lines(""), Lines(""), Lines(""), Lines("")),
		Row(SpanCell(2, Para("Notes")), SpanCell(3, Para("See annex"))),
	)
}

// SampleInstallations returns a subject table whose first row is a merged
// section title "D2 - Technical installations" above a French header row.
func SampleInstallations() string {
	return TableGrid(5,
		Row(SpanCell(5, P(B("D2 - Technical installations")))),
		Row(Lines("N°"), Lines("Titre"), Lines("Sujet"), Lines("Pour qui"), Lines("Pour quand")),
		Row(
			Lines("08.01"),
			Lines("HVAC"),
			Cell(P(B("Meeting 11/02/2026")), P(B("Chiller "), B("ordered"))),
			Lines("Contractor"),
			Lines("15/03/2026"),
		),
	)
}

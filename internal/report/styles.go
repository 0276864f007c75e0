package report

import "github.com/xuri/excelize/v2"

// styleSet holds the workbook style ids used by the slate sheet
type styleSet struct {
	title        int
	overHeader   int
	underHeader  int
	columnHeader int
	percent      int
	rating       int
}

func newStyleSet(f *excelize.File) (*styleSet, error) {
	title, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	overHeader, err := sectionStyle(f, "C6EFCE")
	if err != nil {
		return nil, err
	}
	underHeader, err := sectionStyle(f, "FFC7CE")
	if err != nil {
		return nil, err
	}

	columnHeader, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9D9D9"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "808080", Style: 1},
		},
	})
	if err != nil {
		return nil, err
	}

	percent, err := f.NewStyle(&excelize.Style{NumFmt: 10}) // 0.00%
	if err != nil {
		return nil, err
	}

	rating, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		NumFmt: 2, // 0.00
	})
	if err != nil {
		return nil, err
	}

	return &styleSet{
		title:        title,
		overHeader:   overHeader,
		underHeader:  underHeader,
		columnHeader: columnHeader,
		percent:      percent,
		rating:       rating,
	}, nil
}

func sectionStyle(f *excelize.File, color string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
}

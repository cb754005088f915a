package output

import (
	"github.com/wealthcoach/wealthcoach/internal/domain"
)

// GenerateReport renders the report in the named format and writes it under dir.
// The pseudo-format "all" writes the verbose console text, the detailed CSV and the HTML page.
func GenerateReport(report *domain.BatchReport, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, name := range []string{"console", "detailed-csv", "html"} {
			file, err := WriteFormatted(GetFormatterByName(name), report, dir, FileExtension(name))
			if err != nil {
				return files, err
			}
			files = append(files, file)
		}
		return files, nil
	}

	f, err := LookupFormatter(format)
	if err != nil {
		return nil, err
	}
	file, err := WriteFormatted(f, report, dir, FileExtension(format))
	if err != nil {
		return nil, err
	}
	return []string{file}, nil
}

package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"naukariwala-site/internal/domain"
)

// ColorizeRating greens good ratings and reds weak ones.
func ColorizeRating(r float64) string {
	s := fmt.Sprintf("%.1f", r)
	switch {
	case r >= 4.7:
		return pterm.Green(s)
	case r >= 4.4:
		return pterm.LightGreen(s)
	case r >= 4.0:
		return pterm.Yellow(s)
	default:
		return pterm.Red(s)
	}
}

// JobsTable renders jobs as a table with a header row.
func JobsTable(jobs []domain.Job) (string, error) {
	data := pterm.TableData{{"ID", "Title", "Company", "Location", "Type", "Salary", "Rating", "Tags"}}
	for _, j := range jobs {
		title := j.Title
		if j.Featured {
			title = "★ " + title
		}
		data = append(data, []string{
			j.ID,
			title,
			j.Company,
			j.Location,
			string(j.EmploymentType),
			j.Salary,
			ColorizeRating(j.Rating),
			strings.Join(j.Tags, ", "),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// PrintJobs writes the table and a one-line summary.
func PrintJobs(w io.Writer, jobs []domain.Job, total int, category, query string) error {
	if len(jobs) == 0 {
		fmt.Fprintln(w, pterm.Yellow("No jobs found matching your criteria."))
	} else {
		table, err := JobsTable(jobs)
		if err != nil {
			return fmt.Errorf("render jobs table: %w", err)
		}
		fmt.Fprintln(w, table)
	}

	summary := fmt.Sprintf("Showing %s of %s jobs (category=%s", humanize.Comma(int64(len(jobs))), humanize.Comma(int64(total)), category)
	if query != "" {
		summary += fmt.Sprintf(", query=%q", query)
	}
	fmt.Fprintln(w, summary+")")
	return nil
}

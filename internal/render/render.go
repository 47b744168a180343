// Package render prints plans, time slots and outlines for the terminal.
package render

import (
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/AnuSaha545/ai-study-planner-agent/internal/outline"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/planner"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/resources"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/timeslot"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/workflow"
)

// Result prints a full study plan with its resources.
func Result(w io.Writer, res *workflow.Result) {
	lipgloss.Fprintln(w, titleStyle.Render("PERSONALIZED STUDY PLAN"))
	Plan(w, res.Plan)
	Resources(w, res.Resources)
	lipgloss.Fprintln(w)
	lipgloss.Fprintln(w, successStyle.Render("Study plan generated successfully!"))
}

// Plan prints the weekly schedule.
func Plan(w io.Writer, plan []planner.DailyPlan) {
	if len(plan) == 0 {
		return
	}
	lipgloss.Fprintln(w, sectionStyle.Render("WEEKLY SCHEDULE"))

	for _, day := range plan {
		lipgloss.Fprintln(w)
		lipgloss.Fprintln(w, dayStyle.Render(strings.ToUpper(day.Day))+" "+
			dimStyle.Render("("+hours(day.TotalHours)+")"))

		for i, s := range day.Sessions {
			lipgloss.Fprintf(w, "  %d. %s\n", i+1, subjectStyle.Render(s.Subject))
			lipgloss.Fprintf(w, "     %s %s\n",
				sessionTypeStyle(s.SessionType).Render(strings.ToUpper(string(s.SessionType))),
				dimStyle.Render("| "+hours(s.DurationHours)))
			lipgloss.Fprintln(w, "     "+hintStyle.Render(s.Notes))
		}

		if len(day.TimeSlots) > 0 {
			lipgloss.Fprintln(w, "  "+dimStyle.Render("Timetable"))
			writeSlots(w, day.TimeSlots, "    ")
		}
	}
}

// Resources prints the link set for each subject, ordered by subject.
func Resources(w io.Writer, res map[string]resources.SubjectResources) {
	if len(res) == 0 {
		return
	}
	lipgloss.Fprintln(w, sectionStyle.Render("LEARNING RESOURCES"))

	for _, subject := range slices.Sorted(maps.Keys(res)) {
		r := res[subject]
		lipgloss.Fprintln(w)
		lipgloss.Fprintln(w, subjectStyle.Render(strings.ToUpper(subject)))
		lipgloss.Fprintln(w, "  YouTube:      "+linkStyle.Render(r.YouTubeSearch))
		lipgloss.Fprintln(w, "  PDFs:         "+linkStyle.Render(r.PDFSearch))
		lipgloss.Fprintln(w, "  FreeCodeCamp: "+linkStyle.Render(r.FreeCodeCamp))
	}
}

// Slots prints a timetable of study blocks.
func Slots(w io.Writer, slots []timeslot.Slot) {
	if len(slots) == 0 {
		lipgloss.Fprintln(w, hintStyle.Render("No full study slots fit in the requested hours."))
		return
	}
	lipgloss.Fprintln(w, sectionStyle.Render("TIME SLOTS"))
	writeSlots(w, slots, "  ")
}

func writeSlots(w io.Writer, slots []timeslot.Slot, indent string) {
	for _, s := range slots {
		lipgloss.Fprintln(w, indent+subjectStyle.Render(s.Start+" - "+s.End)+" "+
			dimStyle.Render("("+hours(s.DurationHours)+")"))
	}
}

// Outlines prints subject outlines, ordered by subject.
func Outlines(w io.Writer, outlines map[string]*outline.SubjectOutline) {
	for _, subject := range slices.Sorted(maps.Keys(outlines)) {
		o := outlines[subject]
		lipgloss.Fprintln(w, titleStyle.Render(strings.ToUpper(subject)))

		lipgloss.Fprintln(w, sectionStyle.Render("Concepts"))
		writeNumbered(w, o.Concepts)

		lipgloss.Fprintln(w, sectionStyle.Render("Practice tasks"))
		writeNumbered(w, o.PracticeTasks)
		lipgloss.Fprintln(w)
	}
}

func writeNumbered(w io.Writer, items []string) {
	if len(items) == 0 {
		lipgloss.Fprintln(w, "  "+hintStyle.Render("(none)"))
		return
	}
	for i, item := range items {
		lipgloss.Fprintf(w, "  %2d. %s\n", i+1, item)
	}
}

func hours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64) + "h"
}


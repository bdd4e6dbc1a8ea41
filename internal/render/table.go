package render

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/djedi/ddf/internal/diskfree"
)

const (
	barFilled   = "═"
	barUnfilled = "─"
	noValue     = "-"
)

type column struct {
	header string
	align  int
	value  func(f diskfree.Filesystem) string
}

func (r *Renderer) columns() []column {
	left, right := tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT

	cols := []column{{"Filesystem", left, r.device}}
	if r.opts.PrintType {
		cols = append(cols, column{"Type", left, func(f diskfree.Filesystem) string { return f.FsType }})
	}
	if r.opts.Inodes {
		cols = append(cols,
			column{"Inodes", right, func(f diskfree.Filesystem) string { return inodeCount(f.InodesTotal) }},
			column{"IUsed", right, func(f diskfree.Filesystem) string { return inodeCount(f.InodesUsed) }},
			column{"IFree", right, func(f diskfree.Filesystem) string { return inodeCount(f.InodesFree) }},
			column{"IUse%", right, func(f diskfree.Filesystem) string { return r.percent(f.InodeUsageRatio(), f.InodesTotal) }},
		)
	} else {
		cols = append(cols,
			column{"Size", right, func(f diskfree.Filesystem) string { return humanize.IBytes(f.TotalBytes) }},
			column{"Used", right, func(f diskfree.Filesystem) string { return humanize.IBytes(f.UsedBytes) }},
			column{"Avail", right, func(f diskfree.Filesystem) string { return humanize.IBytes(f.AvailableBytes) }},
			column{"Use%", right, func(f diskfree.Filesystem) string { return r.percent(f.UsageRatio, f.TotalBytes) }},
		)
	}
	cols = append(cols, column{"Mounted on", left, func(f diskfree.Filesystem) string { return f.MountPoint }})
	if r.opts.Drive {
		cols = append(cols, column{"Drive", left, driveLabel})
	}
	if r.opts.BarWidth > 0 {
		cols = append(cols, column{"", left, func(f diskfree.Filesystem) string {
			if r.opts.Inodes {
				return r.bar(f.InodeUsageRatio(), f.InodesTotal)
			}
			return r.bar(f.UsageRatio, f.TotalBytes)
		}})
	}
	return cols
}

func (r *Renderer) renderTable(w io.Writer, records []diskfree.Filesystem) error {
	cols := r.columns()

	table := tablewriter.NewWriter(w)
	headers := make([]string, 0, len(cols))
	aligns := make([]int, 0, len(cols))
	for _, c := range cols {
		headers = append(headers, c.header)
		aligns = append(aligns, c.align)
	}
	table.SetHeader(headers)
	table.SetColumnAlignment(aligns)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, f := range records {
		row := make([]string, 0, len(cols))
		for _, c := range cols {
			row = append(row, c.value(f))
		}
		table.Append(row)
	}
	table.Render()
	return nil
}

func (r *Renderer) newColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if r.opts.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func (r *Renderer) percent(ratio float64, capacity uint64) string {
	if capacity == 0 {
		return noValue
	}
	tier := r.opts.Thresholds.Tier(ratio)
	return r.newColor(tier.attribute()).Sprintf("%.0f%%", math.Round(ratio*100))
}

// bar draws ratio over BarWidth cells; filesystems without capacity get no bar.
func (r *Renderer) bar(ratio float64, capacity uint64) string {
	if capacity == 0 {
		return ""
	}
	width := r.opts.BarWidth
	filled := int(math.Round(ratio * float64(width)))
	filled = max(0, min(filled, width))

	tier := r.opts.Thresholds.Tier(ratio)
	var b strings.Builder
	b.WriteString(r.newColor(tier.attribute(), color.Bold).Sprint(strings.Repeat(barFilled, filled)))
	b.WriteString(r.newColor(color.FgHiBlack).Sprint(strings.Repeat(barUnfilled, width-filled)))
	return b.String()
}

// device dims pseudo filesystems so real devices stand out.
func (r *Renderer) device(f diskfree.Filesystem) string {
	if f.Dummy {
		return r.newColor(color.FgHiBlack).Sprint(f.Device)
	}
	return f.Device
}

// inodeCount groups digits of n. Some FUSE filesystems report counts that
// do not fit an int64.
func inodeCount(n uint64) string {
	return humanize.BigComma(new(big.Int).SetUint64(n))
}

func driveLabel(f diskfree.Filesystem) string {
	if f.Drive == nil {
		return noValue
	}
	label := fmt.Sprintf("%s (%s)", f.Drive.Disk, f.Drive.DriveType)
	if f.Drive.Removable {
		label += " removable"
	}
	return label
}

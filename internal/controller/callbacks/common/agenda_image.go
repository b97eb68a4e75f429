package common

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/columnamoda/store_bot/internal/model"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Недельная повестка для администратора: семь колонок-дней,
// записи рисуются блоками по часу начала.

// Константы размеров и отступов
const (
	imageWidth      = 1400
	imageHeight     = 900
	headerHeight    = 100
	leftLabelsWidth = 80
	dayPaddingX     = 8
	blockRadius     = 6.0
	totalDays       = 7
	firstHour       = 8
	lastHour        = 21
)

// Константы шрифтов
const (
	titleFontSize     = 25.0
	dayFontSize       = 24.0
	hourLabelFontSize = 16.0
	blockFontSize     = 15.0
)

// Цветовая схема
var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	textColor      = color.RGBA{80, 85, 90, 220}
	hourLabelColor = color.RGBA{110, 115, 120, 200}
	hourLineColor  = color.NRGBA{150, 150, 150, 255}
	evenDayColor   = color.NRGBA{240, 240, 240, 255}
	oddDayColor    = color.NRGBA{220, 220, 220, 255}
	todayBgColor   = color.NRGBA{255, 99, 71, 60}

	pendingColor   = color.RGBA{250, 204, 21, 230}
	confirmedColor = color.RGBA{133, 193, 85, 230}
	cancelledColor = color.RGBA{158, 158, 158, 200}
	blockTextColor = color.RGBA{20, 24, 28, 230}
)

var dayNames = [totalDays]string{"Lun", "Mar", "Mié", "Jue", "Vie", "Sáb", "Dom"}

var cachedFont *opentype.Font

// loadFont загружает TTF по пути из конфига или использует basicfont
func loadFont(dc *gg.Context, fontPath string, size float64) {
	if fontPath != "" {
		if cachedFont == nil {
			data, err := os.ReadFile(fontPath)
			if err == nil {
				if parsed, err := opentype.Parse(data); err == nil {
					cachedFont = parsed
				}
			}
		}
		if cachedFont != nil {
			face, err := opentype.NewFace(cachedFont, &opentype.FaceOptions{
				Size:    size,
				DPI:     72,
				Hinting: font.HintingFull,
			})
			if err == nil {
				dc.SetFontFace(face)
				return
			}
		}
	}
	// fallback к встроенному шрифту
	dc.SetFontFace(basicfont.Face7x13)
}

// GenerateAgendaImage рисует записи недели начиная с weekStart (понедельник).
// clientNames — map userID -> имя клиента для подписей на блоках.
func GenerateAgendaImage(weekStart time.Time, appointments []*model.Appointment, clientNames map[int64]string, fontPath string) ([]byte, error) {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(bgColor)
	dc.Clear()

	dayWidth := float64(imageWidth-leftLabelsWidth) / totalDays
	gridHeight := float64(imageHeight - headerHeight)
	hourHeight := gridHeight / float64(lastHour-firstHour+1)

	today := time.Now()

	drawHeader(dc, weekStart, fontPath)
	drawHourLabels(dc, fontPath, hourHeight)
	drawDayColumns(dc, weekStart, today, dayWidth, fontPath)
	drawAppointments(dc, weekStart, appointments, clientNames, dayWidth, hourHeight, fontPath)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode agenda image: %w", err)
	}
	return buf.Bytes(), nil
}

// drawHeader рисует заголовок с диапазоном недели
func drawHeader(dc *gg.Context, weekStart time.Time, fontPath string) {
	loadFont(dc, fontPath, titleFontSize)
	dc.SetColor(textColor)

	title := fmt.Sprintf("Agenda  %s — %s",
		weekStart.Format("02.01.2006"),
		weekStart.AddDate(0, 0, 6).Format("02.01.2006"))
	dc.DrawStringAnchored(title, imageWidth/2, headerHeight/3, 0.5, 0.5)
}

// drawHourLabels рисует подписи часов слева
func drawHourLabels(dc *gg.Context, fontPath string, hourHeight float64) {
	loadFont(dc, fontPath, hourLabelFontSize)

	for hour := firstHour; hour <= lastHour; hour++ {
		y := float64(headerHeight) + float64(hour-firstHour)*hourHeight

		dc.SetColor(hourLabelColor)
		dc.DrawStringAnchored(fmt.Sprintf("%02d:00", hour), leftLabelsWidth/2, y+hourHeight/2, 0.5, 0.5)

		dc.SetColor(hourLineColor)
		dc.SetLineWidth(0.5)
		dc.DrawLine(leftLabelsWidth, y, imageWidth, y)
		dc.Stroke()
	}
}

// drawDayColumns рисует фоновые колонки дней и их подписи
func drawDayColumns(dc *gg.Context, weekStart, today time.Time, dayWidth float64, fontPath string) {
	loadFont(dc, fontPath, dayFontSize)

	for day := 0; day < totalDays; day++ {
		x := float64(leftLabelsWidth) + float64(day)*dayWidth
		date := weekStart.AddDate(0, 0, day)

		if day%2 == 0 {
			dc.SetColor(evenDayColor)
		} else {
			dc.SetColor(oddDayColor)
		}
		dc.DrawRectangle(x, headerHeight, dayWidth, float64(imageHeight-headerHeight))
		dc.Fill()

		// Сегодняшний день подсвечиваем
		if sameDay(date, today) {
			dc.SetColor(todayBgColor)
			dc.DrawRectangle(x, headerHeight, dayWidth, float64(imageHeight-headerHeight))
			dc.Fill()
		}

		dc.SetColor(textColor)
		label := fmt.Sprintf("%s %s", dayNames[day], date.Format("02.01"))
		dc.DrawStringAnchored(label, x+dayWidth/2, headerHeight*2/3, 0.5, 0.5)
	}
}

// drawAppointments рисует блоки записей в колонках дней
func drawAppointments(dc *gg.Context, weekStart time.Time, appointments []*model.Appointment, clientNames map[int64]string, dayWidth, hourHeight float64, fontPath string) {
	loadFont(dc, fontPath, blockFontSize)

	for _, appointment := range appointments {
		day := int(appointment.Date.Sub(weekStart).Hours() / 24)
		if day < 0 || day >= totalDays {
			continue
		}

		hour := appointment.Date.Hour()
		if hour < firstHour || hour > lastHour {
			continue
		}

		x := float64(leftLabelsWidth) + float64(day)*dayWidth + dayPaddingX
		y := float64(headerHeight) + float64(hour-firstHour)*hourHeight + 2

		dc.SetColor(statusColor(appointment.Status))
		dc.DrawRoundedRectangle(x, y, dayWidth-2*dayPaddingX, hourHeight-4, blockRadius)
		dc.Fill()

		label := appointment.Date.Format("15:04")
		if name, ok := clientNames[appointment.UserID]; ok && name != "" {
			label += " " + name
		}

		dc.SetColor(blockTextColor)
		dc.DrawStringAnchored(label, x+(dayWidth-2*dayPaddingX)/2, y+(hourHeight-4)/2, 0.5, 0.5)
	}
}

// statusColor возвращает цвет блока по статусу записи
func statusColor(status model.AppointmentStatus) color.Color {
	switch status {
	case model.AppointmentConfirmed:
		return confirmedColor
	case model.AppointmentCancelled:
		return cancelledColor
	default:
		return pendingColor
	}
}

// sameDay проверяет что две даты приходятся на один день
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

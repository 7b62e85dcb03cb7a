package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Stream is a live stream listed in the feed
type Stream struct {
	AddressableID string
	Title         string
	Host          string
}

// DemoStreams returns the streams shown by the demo feed
func DemoStreams() []Stream {
	return []Stream{
		{AddressableID: "30311:5c83da77:sunday-jam", Title: "Sunday jam session", Host: "fiatjaf"},
		{AddressableID: "30311:82341f88:bitcoin-talk", Title: "Ask me anything", Host: "jb55"},
		{AddressableID: "30311:3bf0c63f:lofi-radio", Title: "Lo-fi radio 24/7", Host: "pablof7z"},
		{AddressableID: "30311:e88a691e:city-walk", Title: "Night city walk", Host: "vitor"},
	}
}

// StreamRow is a compact feed row with a live badge and a watch button
type StreamRow struct {
	widget.BaseWidget

	stream       Stream
	localization *Localization

	badge      *canvas.Text
	titleLabel *widget.Label
	hostLabel  *widget.Label
	watchBtn   *widget.Button

	onWatch func(Stream)
}

// NewStreamRow creates a new stream row widget
func NewStreamRow(localization *Localization) *StreamRow {
	sr := &StreamRow{localization: localization}
	sr.ExtendBaseWidget(sr)

	sr.badge = canvas.NewText(IconLive+" "+localization.GetText(KeyLiveBadge), themeColor(ColorNameLive))
	sr.badge.TextStyle = fyne.TextStyle{Bold: true}
	sr.badge.TextSize = theme.CaptionTextSize()

	sr.titleLabel = widget.NewLabel("")
	sr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	sr.titleLabel.Truncation = fyne.TextTruncateEllipsis
	sr.hostLabel = widget.NewLabel("")

	sr.watchBtn = widget.NewButtonWithIcon(localization.GetText(KeyWatchLive), theme.MediaPlayIcon(), func() {
		if sr.onWatch != nil {
			sr.onWatch(sr.stream)
		}
	})
	sr.watchBtn.Importance = widget.HighImportance
	return sr
}

// SetStream updates the row with stream data
func (sr *StreamRow) SetStream(s Stream) {
	sr.stream = s
	sr.titleLabel.SetText(s.Title)
	sr.hostLabel.SetText(s.Host + MiddleDotSeparator + s.AddressableID)
}

// SetOnWatch sets the watch callback
func (sr *StreamRow) SetOnWatch(fn func(Stream)) {
	sr.onWatch = fn
}

// CreateRenderer implements fyne.Widget
func (sr *StreamRow) CreateRenderer() fyne.WidgetRenderer {
	texts := container.NewVBox(sr.titleLabel, sr.hostLabel)
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, container.NewCenter(sr.badge), container.NewCenter(sr.watchBtn), texts))
}

// MinSize keeps rows comfortably tappable
func (sr *StreamRow) MinSize() fyne.Size {
	size := sr.BaseWidget.MinSize()
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	return size
}

package ui

import (
	"bytes"
	"log"

	"github.com/automoto/keydoor/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// WorldEntry is one selectable level in the menu.
type WorldEntry struct {
	Label    string
	Locked   bool
	OnSelect func()
}

type WorldSelectUI struct {
	UI *ebitenui.UI

	OnOnline        func(address, room string)
	OnResetProgress func()

	entries     []WorldEntry
	addrInput   *widget.TextInput
	roomInput   *widget.TextInput
	statusLabel *widget.Label
	onlineBtn   *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewWorldSelectUI(entries []WorldEntry, onOnline func(address, room string), onResetProgress func()) *WorldSelectUI {
	ui := &WorldSelectUI{
		OnOnline:        onOnline,
		OnResetProgress: onResetProgress,
		entries:         entries,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *WorldSelectUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 28}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
}

func (ui *WorldSelectUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(config.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(config.Menu.Title, &ui.titleFace, &widget.LabelColor{
			Idle: config.Menu.TextColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	for _, entry := range ui.entries {
		contentContainer.AddChild(ui.buildWorldButton(entry))
	}

	contentContainer.AddChild(ui.buildOnlinePanel())

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: config.Menu.TextWarning,
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	contentContainer.AddChild(ui.menuButton("Reset progress", 140, ui.smallFace, func() {
		if ui.OnResetProgress != nil {
			ui.OnResetProgress()
		}
	}))

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *WorldSelectUI) buildWorldButton(entry WorldEntry) *widget.Button {
	label := entry.Label
	if entry.Locked {
		label += " (locked)"
	}
	btn := ui.menuButton(label, 240, ui.normalFace, func() {
		if !entry.Locked && entry.OnSelect != nil {
			entry.OnSelect()
		}
	})
	if entry.Locked {
		btn.GetWidget().Disabled = true
	}
	return btn
}

func (ui *WorldSelectUI) menuButton(label string, width int, face text.Face, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 30)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(config.Menu.ButtonIdle),
			Hover:    image.NewNineSliceColor(config.Menu.ButtonHover),
			Pressed:  image.NewNineSliceColor(config.Menu.ButtonPressed),
			Disabled: image.NewNineSliceColor(config.Menu.ButtonDisabled),
		}),
		widget.ButtonOpts.Text(label, &face, &widget.ButtonTextColor{
			Idle:     config.Menu.TextColor,
			Disabled: config.Menu.TextDisabled,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (ui *WorldSelectUI) buildOnlinePanel() *widget.Container {
	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(config.Menu.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	ui.addrInput = ui.labeledInput(panel, "Server:", config.Net.ServerAddr)
	ui.roomInput = ui.labeledInput(panel, "Room:  ", config.Net.RoomID)

	ui.onlineBtn = ui.menuButton("Play online", 140, ui.normalFace, func() {
		if ui.OnOnline != nil {
			ui.OnOnline(ui.address(), ui.room())
		}
	})
	panel.AddChild(ui.onlineBtn)

	return panel
}

func (ui *WorldSelectUI) labeledInput(panel *widget.Container, label, placeholder string) *widget.TextInput {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(label, &ui.smallFace, &widget.LabelColor{
			Idle: config.Menu.TextColor,
		}),
	))

	input := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 22)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(config.Menu.ButtonIdle),
			Disabled: image.NewNineSliceColor(config.Menu.ButtonDisabled),
		}),
		widget.TextInputOpts.Face(&ui.smallFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          config.Menu.TextColor,
			Disabled:      config.Menu.TextDisabled,
			Caret:         config.Menu.TextColor,
			DisabledCaret: config.Menu.TextDisabled,
		}),
		widget.TextInputOpts.Placeholder(placeholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
	row.AddChild(input)
	panel.AddChild(row)
	return input
}

func (ui *WorldSelectUI) address() string {
	if addr := ui.addrInput.GetText(); addr != "" {
		return addr
	}
	return config.Net.ServerAddr
}

func (ui *WorldSelectUI) room() string {
	if room := ui.roomInput.GetText(); room != "" {
		return room
	}
	return config.Net.RoomID
}

func (ui *WorldSelectUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *WorldSelectUI) SetConnecting(connecting bool) {
	if ui.onlineBtn != nil {
		ui.onlineBtn.GetWidget().Disabled = connecting
	}
}

func (ui *WorldSelectUI) Update() {
	ui.UI.Update()
}

func (ui *WorldSelectUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"gfxmanager/catalog"
	"gfxmanager/panel"
)

// settingsView shows one select per setting, grouped in tabs
type settingsView struct {
	panel   *panel.Panel
	window  fyne.Window
	selects map[catalog.ID]*widget.Select
	// syncing suppresses change callbacks while the widgets follow the panel
	syncing bool
	onError func(error)
}

func newSettingsView(p *panel.Panel, window fyne.Window, onError func(error)) *settingsView {
	return &settingsView{
		panel:   p,
		window:  window,
		selects: make(map[catalog.ID]*widget.Select),
		onError: onError,
	}
}

// build creates the tab container
func (v *settingsView) build() *container.AppTabs {
	cat := v.panel.Catalog()
	tabs := container.NewAppTabs()

	for _, group := range cat.Groups() {
		form := container.NewVBox()
		for _, d := range cat.Group(group) {
			form.Add(v.row(d))
			if d.Rule {
				form.Add(widget.NewSeparator())
			}
		}
		tabs.Append(container.NewTabItem(group.String(), container.NewVScroll(form)))
	}

	v.sync()
	return tabs
}

func (v *settingsView) row(d catalog.Descriptor) fyne.CanvasObject {
	id := d.ID
	sel := widget.NewSelect(d.Options, func(label string) {
		if v.syncing {
			return
		}
		if _, err := v.panel.SelectText(id, label); err != nil {
			v.onError(err)
		}
		v.sync()
	})
	sel.PlaceHolder = d.Sentinel()
	v.selects[id] = sel

	help := widget.NewButtonWithIcon("", theme.HelpIcon(), func() {
		dialog.ShowInformation(d.Label, d.Help(), v.window)
	})
	help.Importance = widget.LowImportance

	label := widget.NewLabel(d.Label)
	return container.NewBorder(nil, nil, label, help, sel)
}

// sync updates every select from the panel state
func (v *settingsView) sync() {
	v.syncing = true
	defer func() { v.syncing = false }()

	for id, sel := range v.selects {
		sel.SetSelectedIndex(v.panel.Index(id))
		if v.panel.Active(id) {
			sel.Enable()
		} else {
			sel.Disable()
		}
	}
}

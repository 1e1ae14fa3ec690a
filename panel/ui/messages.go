package ui

// Fixed display texts, UTF-8. They are encoded to the display character set when drawn.
const (
	msgCancelled  = "Отмена!"
	msgSaved      = "Сделал!"
	msgBrightness = "Изменил!"
	msgCleared    = "Очищено"
	msgErrWrite   = "Err write"
	msgErrRead    = "Err read"
	msgErrOut     = "Err out"

	fmtNormal     = "Яч:%02d Ярк:%02d"
	fmtEdit       = "Ред яч:%02d(%d)"
	fmtBrightness = "Яркость: %02d"
	fmtSetup      = "Уст:%d"
)

package tray

import _ "embed"

//go:embed assets/tomato.png
var iconData []byte

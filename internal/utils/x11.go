package utils

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var (
	XConn *xgb.Conn
	XRoot xproto.Window
)

func InitX11() error {
	var err error
	XConn, err = xgb.NewConn()
	if err != nil {
		return err
	}

	setup := xproto.Setup(XConn)
	XRoot = setup.DefaultScreen(XConn).Root
	return nil
}

// CloseX11 drops the shared X connection, if any.
func CloseX11() {
	if XConn != nil {
		XConn.Close()
		XConn = nil
	}
}

// GetScreenSize returns the size of the default screen's root window.
func GetScreenSize() (int, int, error) {
	if XConn == nil {
		if err := InitX11(); err != nil {
			return 0, 0, fmt.Errorf("connect to X server: %w", err)
		}
	}
	return GetWindowSize(uint32(XRoot))
}

// GetWindowSize returns the geometry of an arbitrary X window, e.g. a desktop
// window the wallpaper is embedded into.
func GetWindowSize(id uint32) (int, int, error) {
	if XConn == nil {
		if err := InitX11(); err != nil {
			return 0, 0, fmt.Errorf("connect to X server: %w", err)
		}
	}

	reply, err := xproto.GetGeometry(XConn, xproto.Drawable(id)).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("query geometry of window 0x%x: %w", id, err)
	}

	return int(reply.Width), int(reply.Height), nil
}

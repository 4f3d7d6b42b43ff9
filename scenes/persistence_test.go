package scenes

import (
	"testing"

	cfg "github.com/automoto/quai/config"
	"github.com/automoto/quai/render"
	"github.com/go-gl/mathgl/mgl64"
)

func TestDecodeSettings(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    *SavedSettings
		wantErr bool
	}{
		{"nothing saved", "", nil, false},
		{"full", `{"showHitZones":true,"wave":2,"layout":"arena"}`, &SavedSettings{ShowHitZones: true, Wave: 2, Layout: "arena"}, false},
		{"negative wave", `{"wave":-3}`, &SavedSettings{}, false},
		{"garbage", `{not json`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeSettings([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("got %+v, want %+v", *got, *tt.want)
			}
		})
	}
}

func TestSaveSettingsWithoutPersistence(t *testing.T) {
	if err := SaveSettings(&SavedSettings{Wave: 1}); err != nil {
		t.Errorf("SaveSettings before init = %v, want nil", err)
	}
}

func TestAimPoint(t *testing.T) {
	view := render.View{Camera: mgl64.Vec3{5, 0, 5}, PixelsPerUnit: 4, Width: 400, Height: 200}

	body := AimPoint(view, 200, 100, false)
	if !body.ApproxEqualThreshold(mgl64.Vec3{5, cfg.HitZone.BodyY, 5}, 1e-9) {
		t.Errorf("body aim = %v", body)
	}
	head := AimPoint(view, 240, 100, true)
	if !head.ApproxEqualThreshold(mgl64.Vec3{15, cfg.HitZone.HeadY, 5}, 1e-9) {
		t.Errorf("head aim = %v", head)
	}
}

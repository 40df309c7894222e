package effects

import "fmt"

// ZoompanFilter emits the ffmpeg zoompan filter implementing the same
// time-to-transform mapping as At. zoompan has no wall-clock variable, so
// playback time is reconstructed as on/fps inside the expressions. d=1 makes
// zoompan re-evaluate every frame.
func (p Params) ZoompanFilter(width, height int, fps float64) string {
	p = p.normalized()
	if fps <= 0 {
		fps = 30
	}

	t := fmt.Sprintf("(on/%g)", fps)
	m := fmt.Sprintf("mod(%s,%g)", t, zoomPeriod)
	m30 := fmt.Sprintf("mod(%s,%g)", t, anchorPeriod)

	zoom := fmt.Sprintf(
		"if(lt(%s,%g),1+%g*(%s/%g),if(lt(%s,%g),%g,1+%g*((%g-%s)/%g)))",
		m, p.RampIn,
		p.ZoomDelta, m, p.RampIn,
		m, zoomPeriod-p.RampOut,
		1+p.ZoomDelta,
		p.ZoomDelta, zoomPeriod, m, p.RampOut,
	)

	ax := fmt.Sprintf("if(lt(%s,%g),%g,if(lt(%s,%g),%g,%g))",
		m30, anchorPeriod/3, anchorCenter,
		m30, 2*anchorPeriod/3, anchorRight,
		anchorLeft,
	)

	x := fmt.Sprintf("(iw-iw/zoom)*%s", ax)
	y := fmt.Sprintf("(ih-ih/zoom)*%g", anchorY)

	return fmt.Sprintf("zoompan=z='%s':x='%s':y='%s':d=1:fps=%g:s=%dx%d",
		zoom, x, y, fps, width, height)
}

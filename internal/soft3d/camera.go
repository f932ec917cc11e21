package soft3d

import "math"

// Projection selects the camera projection kind.
type Projection uint8

const (
	Orthographic Projection = iota
	Perspective
)

// Camera describes a view by Euler angles around a target point.
//
//   - YawDeg rotates around +Y (up)
//   - PitchDeg positive pitches the camera upward (camera is above the
//     target when pitch > 0)
//   - RollDeg rotates around the view forward axis
//
// When AutoFit is set, Target, Distance, NearZ/FarZ (and, for ortho,
// OrthoHalfHeight) are derived from the geometry bounds and the
// caller-supplied values are ignored.
type Camera struct {
	YawDeg   Real
	PitchDeg Real
	RollDeg  Real

	Target   Vec3
	Distance Real

	Projection Projection

	FovYDeg         Real // perspective
	OrthoHalfHeight Real // orthographic, world units

	NearZ Real
	FarZ  Real

	AutoFit   bool
	FitMargin Real // fraction of bounds to pad
}

// DefaultCamera returns the classic isometric setup used by the
// exporters: yaw 45, pitch 35.264, orthographic, auto-fitted.
func DefaultCamera() Camera {
	return Camera{
		YawDeg:          45,
		PitchDeg:        35.264,
		RollDeg:         0,
		Distance:        120,
		Projection:      Orthographic,
		FovYDeg:         45,
		OrthoHalfHeight: 20,
		NearZ:           0.25,
		FarZ:            5000,
		AutoFit:         true,
		FitMargin:       0.08,
	}
}

// orbitDir returns the unit offset direction from target toward the
// camera for the given yaw/pitch.
func orbitDir(yawRad, pitchRad Real) Vec3 {
	return Vec3{
		math.Cos(pitchRad) * math.Cos(yawRad),
		math.Sin(pitchRad),
		math.Cos(pitchRad) * math.Sin(yawRad),
	}.Norm()
}

// viewFor builds the look-at matrix for an eye/target pair, applying
// roll as a post-rotation around the forward axis.
func viewFor(eye, target Vec3, rollDeg Real) Mat4 {
	view := LookAtRH(eye, target, Vec3{0, 1, 0})
	if math.Abs(rollDeg) > 1e-4 {
		fwd := target.Sub(eye).Norm()
		// roll is a world rotation applied before view, so post-multiply
		// by the inverse roll (negated angle).
		invRoll := RotationAxisAngle(fwd, -degToRad(rollDeg))
		view = view.Mul(invRoll)
	}
	return view
}

// fitTo derives target/distance/near/far (and ortho half-height) so
// that the padded bounds stay inside the view volume.
func (cam *Camera) fitTo(bounds AABB, aspect Real) {
	center := bounds.Center()
	radius := bounds.Radius()

	cam.Target = center

	margin := clampF(cam.FitMargin, 0, 0.50)
	rPad := radius * (1 + margin)

	if cam.Projection == Perspective {
		fovY := degToRad(math.Max(1, cam.FovYDeg))
		fovX := 2 * math.Atan(math.Tan(fovY*0.5)*aspect)
		dY := rPad * 3
		if s := math.Sin(fovY * 0.5); s > 1e-6 {
			dY = rPad / s
		}
		dX := rPad * 3
		if s := math.Sin(fovX * 0.5); s > 1e-6 {
			dX = rPad / s
		}
		cam.Distance = math.Max(dY, dX)
		cam.NearZ = math.Max(0.05, cam.Distance-rPad*2.5)
		cam.FarZ = math.Max(cam.NearZ+10, cam.Distance+rPad*3.5)
		return
	}

	// For ortho, fit the rotated bounds into the view rectangle by
	// projecting the 8 AABB corners into view space. The provisional
	// distance only has to define a valid view matrix.
	dir := orbitDir(degToRad(cam.YawDeg), degToRad(cam.PitchDeg))
	tmpDist := math.Max(10, rPad*4)
	eye := center.Add(dir.Mul(tmpDist))
	view := viewFor(eye, center, cam.RollDeg)

	inf := math.Inf(1)
	minX, minY, minZ := inf, inf, inf
	maxX, maxY, maxZ := -inf, -inf, -inf
	for _, p := range bounds.Corners() {
		v := view.MulPoint(p)
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		minZ = math.Min(minZ, v.Z)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
		maxZ = math.Max(maxZ, v.Z)
	}

	extentX := (maxX - minX) * 0.5
	extentY := (maxY - minY) * 0.5
	hhFit := math.Max(extentY, extentX/math.Max(1e-6, aspect))
	cam.OrthoHalfHeight = math.Max(0.1, hhFit*(1+margin))

	// Depth range from view-space z; view z is negative in front.
	nearFit := math.Max(0.05, -maxZ*(1-margin))
	farFit := math.Max(nearFit+10, -minZ*(1+margin))
	cam.NearZ = nearFit
	cam.FarZ = farFit

	cam.Distance = tmpDist
}

// resolve turns the descriptor into concrete view/projection matrices.
// haveBounds is false for an empty scene, which skips auto-fit and uses
// the explicit descriptor values unchanged.
func (cam Camera) resolve(bounds AABB, haveBounds bool, aspect Real) (view, proj, viewProj Mat4) {
	if cam.AutoFit && haveBounds {
		cam.fitTo(bounds, aspect)
	}

	dir := orbitDir(degToRad(cam.YawDeg), degToRad(cam.PitchDeg))
	eye := cam.Target.Add(dir.Mul(math.Max(0.01, cam.Distance)))
	view = viewFor(eye, cam.Target, cam.RollDeg)

	nearZ := math.Max(0.01, cam.NearZ)
	farZ := math.Max(cam.NearZ+0.1, cam.FarZ)
	if cam.Projection == Perspective {
		proj = PerspectiveRH(degToRad(math.Max(1, cam.FovYDeg)), aspect, nearZ, farZ)
	} else {
		proj = OrthoRH(math.Max(0.01, cam.OrthoHalfHeight), aspect, nearZ, farZ)
	}
	return view, proj, proj.Mul(view)
}

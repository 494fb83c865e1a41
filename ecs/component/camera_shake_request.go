package component

// CameraShakeRequest asks the camera system to start a screen shake.
type CameraShakeRequest struct {
	Frames int
}

var CameraShakeRequestComponent = NewComponent[CameraShakeRequest]("camera shake")

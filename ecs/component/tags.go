package component

// PlayerTag marks the one controllable animal. Systems find the player with
// ecs.First on this tag rather than scanning Player components.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]("player tag")

// CameraTag marks the camera singleton.
type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]("camera tag")

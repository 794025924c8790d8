package mode_s

// decodeCommB50 decodes the track and turn report (BDS 5,0): roll angle,
// true track angle, and ground speed.
func decodeCommB50(me *bitReader) (*CommB50Payload, error) {
	rollSign, err := me.readUint32(0, 1)
	if err != nil {
		return nil, err
	}
	rollMag, err := me.readUint32(1, 9)
	if err != nil {
		return nil, err
	}
	trackSign, err := me.readUint32(11, 1)
	if err != nil {
		return nil, err
	}
	trackMag, err := me.readUint32(12, 10)
	if err != nil {
		return nil, err
	}
	speed, err := me.readUint32(23, 10)
	if err != nil {
		return nil, err
	}

	roll := float64(rollMag) * 45.0 / 256.0
	if rollSign == 1 {
		roll = -roll
	}
	track := float64(trackMag) * 90.0 / 512.0
	if trackSign == 1 {
		track = -track
	}
	return &CommB50Payload{RollAngle: roll, TrueTrack: track, GroundSpeed: float64(speed) * 2}, nil
}

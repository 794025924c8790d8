package mode_s

// decodeCommB44 decodes the meteorological routine air report (BDS 4,4):
// wind vector and static air temperature.
func decodeCommB44(me *bitReader) (*CommB44Payload, error) {
	speed, err := me.readUint32(1, 9)
	if err != nil {
		return nil, err
	}
	dir, err := me.readUint32(10, 9)
	if err != nil {
		return nil, err
	}
	tempRaw, err := me.readUint32(19, 11)
	if err != nil {
		return nil, err
	}
	sign := (tempRaw >> 10) & 1
	mag := tempRaw & 0x3FF
	temp := float64(mag) * 0.125
	if sign == 1 {
		temp = -temp
	}

	return &CommB44Payload{
		WindSpeed:     float64(speed),
		WindDirection: float64(dir) * 360.0 / 512.0,
		Temperature:   temp,
	}, nil
}

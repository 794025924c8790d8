package mode_s

// wakeVortexCategory maps an ES aircraft-identification message's type code
// and category bits to a wake-vortex/emitter category string; "n/a" stands
// for no category information.
func wakeVortexCategory(typeCode, category uint64) string {
	switch typeCode {
	case 1:
		return "Reserved"
	case 2:
		switch category {
		case 1:
			return "SurfaceEmergencyVehicle"
		case 3:
			return "SurfaceServiceVehicle"
		case 4, 5, 6, 7:
			return "GroundObstruction"
		default:
			return "n/a"
		}
	case 3:
		switch category {
		case 1:
			return "Glider"
		case 2:
			return "LighterThanAir"
		case 3:
			return "Parachutist"
		case 4:
			return "Ultralight"
		case 6:
			return "UAV"
		case 7:
			return "SpaceVehicle"
		default:
			return "n/a"
		}
	case 4:
		switch category {
		case 1:
			return "Light"
		case 2:
			return "Medium1"
		case 3:
			return "Medium2"
		case 4:
			return "HighVortex"
		case 5:
			return "Heavy"
		case 6:
			return "HighPerformance"
		case 7:
			return "Rotorcraft"
		default:
			return "n/a"
		}
	default:
		return "n/a"
	}
}

package tile

// TunnelBridge is the overlay of a tunnel portal or a bridge ramp.
type TunnelBridge struct{ r *Record }

func (r *Record) TunnelBridge() TunnelBridge {
	r.assertKind(KindTunnelBridge)
	return TunnelBridge{r}
}

func (tb TunnelBridge) Owner() Owner {
	return Owner(gb8(tb.r.m1, 0, 5))
}

func (tb TunnelBridge) IsBridge() bool {
	return hasBit8(tb.r.m5, 7)
}

func (tb TunnelBridge) IsTunnel() bool {
	return !tb.IsBridge()
}

// Direction returns the direction from this end into the tunnel or onto the bridge.
func (tb TunnelBridge) Direction() DiagDirection {
	return DiagDirection(gb8(tb.r.m5, 0, 2))
}

func (tb TunnelBridge) TransportType() TransportType {
	return TransportType(gb8(tb.r.m5, 2, 2))
}

func (tb TunnelBridge) IsReserved() bool {
	return hasBit8(tb.r.m5, 4)
}

func (tb TunnelBridge) SetReserved(b bool) {
	if tb.TransportType() != TransportRail {
		panic("tile: reservation on a non-rail tunnel or bridge")
	}
	setBit8(&tb.r.m5, 4, b)
}

func (tb TunnelBridge) BridgeType() uint8 {
	if !tb.IsBridge() {
		panic("tile: tunnel has no bridge type")
	}
	return gb8(tb.r.m6, 2, 4)
}

func (tb TunnelBridge) IsOnSnow() bool {
	return hasBit8(tb.r.m7, 5)
}

func (tb TunnelBridge) SetSnow(b bool) {
	setBit8(&tb.r.m7, 5, b)
}

func makeTunnelBridge(r *Record, o Owner, d DiagDirection, tt TransportType, bridge bool) {
	if tt > TransportWater {
		panic("tile: invalid transport type")
	}
	r.ChangeKindOwned(KindTunnelBridge, o)
	r.m5 = b2u8(bridge)<<7 | uint8(tt)<<2 | uint8(d.check())
	r.SetRailType(InvalidRailType)
	r.SetRoadTypes(InvalidRoadType, InvalidRoadType)
}

func MakeRailTunnel(r *Record, o Owner, d DiagDirection, rt RailType) {
	makeTunnelBridge(r, o, d, TransportRail, false)
	r.SetRailType(rt)
}

func MakeRoadTunnel(r *Record, o Owner, d DiagDirection, roadRT, tramRT RoadType) {
	makeTunnelBridge(r, o, d, TransportRoad, false)
	r.SetRoadOwner(o)
	if o != OwnerTown {
		r.SetTramOwner(o)
	}
	r.SetRoadTypes(roadRT, tramRT)
}

func makeBridgeRamp(r *Record, o Owner, bridgeType uint8, d DiagDirection, tt TransportType) {
	makeTunnelBridge(r, o, d, tt, true)
	sb8(&r.m6, 2, 4, bridgeType)
}

func MakeRailBridgeRamp(r *Record, o Owner, bridgeType uint8, d DiagDirection, rt RailType) {
	makeBridgeRamp(r, o, bridgeType, d, TransportRail)
	r.SetRailType(rt)
}

func MakeRoadBridgeRamp(r *Record, o, roadOwner, tramOwner Owner, bridgeType uint8, d DiagDirection, roadRT, tramRT RoadType) {
	makeBridgeRamp(r, o, bridgeType, d, TransportRoad)
	r.SetRoadOwner(roadOwner)
	if tramOwner != OwnerTown {
		r.SetTramOwner(tramOwner)
	}
	r.SetRoadTypes(roadRT, tramRT)
}

// MakeAqueductRamp builds one end of a canal aqueduct.
func MakeAqueductRamp(r *Record, o Owner, d DiagDirection) {
	makeBridgeRamp(r, o, 0, d, TransportWater)
}

package aes

// AddRoundKey 轮密钥加，自逆操作
func AddRoundKey(s State, rk State) State {
	var out State
	for i := 0; i < 8; i++ {
		out[i] = s[i] ^ rk[i]
	}
	return out
}

// rotNibbleRight 把一个4位行值在自身半字节内右旋k位
func rotNibbleRight(v uint16, k uint) uint16 {
	if k == 0 {
		return v & 0xF
	}
	return ((v >> k) | (v << (4 - k))) & 0xF
}

func rotNibbleLeft(v uint16, k uint) uint16 {
	if k == 0 {
		return v & 0xF
	}
	return ((v << k) | (v >> (4 - k))) & 0xF
}

// shiftRowsSlice 对单个切片字做行移位：行r（位4r..4r+3）各自独立旋转
func shiftRowsSlice(w uint16, rotate func(uint16, uint) uint16) uint16 {
	r0 := w & 0xF
	r1 := (w >> 4) & 0xF
	r2 := (w >> 8) & 0xF
	r3 := (w >> 12) & 0xF

	r1 = rotate(r1, 1)
	r2 = rotate(r2, 2)
	r3 = rotate(r3, 3)

	return r0 | (r1 << 4) | (r2 << 8) | (r3 << 12)
}

// ShiftRows 行r左移r列
func ShiftRows(s State) State {
	var out State
	for i := 0; i < 8; i++ {
		out[i] = shiftRowsSlice(s[i], rotNibbleRight)
	}
	return out
}

// InvShiftRows 是ShiftRows的逆
func InvShiftRows(s State) State {
	var out State
	for i := 0; i < 8; i++ {
		out[i] = shiftRowsSlice(s[i], rotNibbleLeft)
	}
	return out
}

// rotState 把每个切片字循环右移4*k位
// 即同时取所有4列中第(row+k)行的字节放到第row行的位置
func rotState(s State, k uint) State {
	shift := 4 * k
	var out State
	for i := 0; i < 8; i++ {
		out[i] = (s[i] >> shift) | (s[i] << (16 - shift))
	}
	return out
}

// xtime 对每个车道的字节做GF(2^8)乘02
func xtime(s State) State {
	var out State
	out[0] = s[7]
	out[1] = s[0] ^ s[7]
	out[2] = s[1]
	out[3] = s[2] ^ s[7]
	out[4] = s[3] ^ s[7]
	out[5] = s[4]
	out[6] = s[5]
	out[7] = s[6]
	return out
}

func xorState(a, b State) State {
	var out State
	for i := 0; i < 8; i++ {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// MixColumns 每列乘以03x^3+01x^2+01x+02（mod x^4+1）
// b(r) = 02*a(r) ^ 03*a(r+1) ^ a(r+2) ^ a(r+3)
func MixColumns(s State) State {
	r1 := rotState(s, 1)
	r2 := rotState(s, 2)
	r3 := rotState(s, 3)

	t := xtime(s)
	t = xorState(t, xtime(r1))
	t = xorState(t, r1)
	t = xorState(t, r2)
	t = xorState(t, r3)
	return t
}

// InvMixColumns 每列乘以0Bx^3+0Dx^2+09x+0E（mod x^4+1）
// b(r) = 0E*a(r) ^ 0B*a(r+1) ^ 0D*a(r+2) ^ 09*a(r+3)
// 列总和与旋转无关，只算一次复用在每个行位置
func InvMixColumns(s State) State {
	r1 := rotState(s, 1)
	r2 := rotState(s, 2)
	r3 := rotState(s, 3)

	sum := xorState(xorState(s, r1), xorState(r2, r3))
	p02 := xorState(s, r2)
	p01 := xorState(s, r1)

	t8 := xtime(xtime(xtime(sum)))
	t4 := xtime(xtime(p02))
	t2 := xtime(p01)
	t1 := xorState(sum, s)

	return xorState(xorState(t8, t4), xorState(t2, t1))
}

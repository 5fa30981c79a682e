package aes

// encryptBlock 正向加密：初始轮密钥加，Nr-1个完整轮，最后一轮不做MixColumns
func encryptBlock(in *[16]byte, roundKeys []State, out *[16]byte) {
	nr := len(roundKeys) - 1

	s := Load(in)
	s = AddRoundKey(s, roundKeys[0])

	for round := 1; round < nr; round++ {
		s = SubBytes(s)
		s = ShiftRows(s)
		s = MixColumns(s)
		s = AddRoundKey(s, roundKeys[round])
	}

	s = SubBytes(s)
	s = ShiftRows(s)
	s = AddRoundKey(s, roundKeys[nr])

	Save(s, out)
}

// decryptBlock 直接逆密码：按原顺序反向使用轮密钥，所以循环内AddRoundKey要在InvMixColumns之前
func decryptBlock(in *[16]byte, roundKeys []State, out *[16]byte) {
	nr := len(roundKeys) - 1

	s := Load(in)
	s = AddRoundKey(s, roundKeys[nr])

	for round := nr - 1; round >= 1; round-- {
		s = InvShiftRows(s)
		s = InvSubBytes(s)
		s = AddRoundKey(s, roundKeys[round])
		s = InvMixColumns(s)
	}

	s = InvShiftRows(s)
	s = InvSubBytes(s)
	s = AddRoundKey(s, roundKeys[0])

	Save(s, out)
}

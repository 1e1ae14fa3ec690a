package lcdfont

// glyphRows holds 5x7 cell patterns keyed by CP1251 code. Bit 4 is the leftmost pixel.
var glyphRows = map[byte][7]byte{
	0x20: {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // space
	0x21: {0x04, 0x04, 0x04, 0x04, 0x04, 0x00, 0x04}, // !
	0x22: {0x0a, 0x0a, 0x0a, 0x00, 0x00, 0x00, 0x00}, // "
	0x23: {0x0a, 0x0a, 0x1f, 0x0a, 0x1f, 0x0a, 0x0a}, // #
	0x24: {0x04, 0x0f, 0x14, 0x0e, 0x05, 0x1e, 0x04}, // $
	0x25: {0x18, 0x19, 0x02, 0x04, 0x08, 0x13, 0x03}, // %
	0x26: {0x0c, 0x12, 0x14, 0x08, 0x15, 0x12, 0x0d}, // &
	0x27: {0x04, 0x04, 0x08, 0x00, 0x00, 0x00, 0x00}, // '
	0x28: {0x02, 0x04, 0x08, 0x08, 0x08, 0x04, 0x02}, // (
	0x29: {0x08, 0x04, 0x02, 0x02, 0x02, 0x04, 0x08}, // )
	0x2a: {0x00, 0x04, 0x15, 0x0e, 0x15, 0x04, 0x00}, // *
	0x2b: {0x00, 0x04, 0x04, 0x1f, 0x04, 0x04, 0x00}, // +
	0x2c: {0x00, 0x00, 0x00, 0x00, 0x0c, 0x04, 0x08}, // ,
	0x2d: {0x00, 0x00, 0x00, 0x1f, 0x00, 0x00, 0x00}, // -
	0x2e: {0x00, 0x00, 0x00, 0x00, 0x00, 0x0c, 0x0c}, // .
	0x2f: {0x00, 0x01, 0x02, 0x04, 0x08, 0x10, 0x00}, // /
	0x30: {0x0e, 0x11, 0x13, 0x15, 0x19, 0x11, 0x0e}, // 0
	0x31: {0x04, 0x0c, 0x04, 0x04, 0x04, 0x04, 0x0e}, // 1
	0x32: {0x0e, 0x11, 0x01, 0x02, 0x04, 0x08, 0x1f}, // 2
	0x33: {0x1f, 0x02, 0x04, 0x02, 0x01, 0x11, 0x0e}, // 3
	0x34: {0x02, 0x06, 0x0a, 0x12, 0x1f, 0x02, 0x02}, // 4
	0x35: {0x1f, 0x10, 0x1e, 0x01, 0x01, 0x11, 0x0e}, // 5
	0x36: {0x06, 0x08, 0x10, 0x1e, 0x11, 0x11, 0x0e}, // 6
	0x37: {0x1f, 0x01, 0x02, 0x04, 0x08, 0x08, 0x08}, // 7
	0x38: {0x0e, 0x11, 0x11, 0x0e, 0x11, 0x11, 0x0e}, // 8
	0x39: {0x0e, 0x11, 0x11, 0x0f, 0x01, 0x02, 0x0c}, // 9
	0x3a: {0x00, 0x0c, 0x0c, 0x00, 0x0c, 0x0c, 0x00}, // :
	0x3b: {0x00, 0x0c, 0x0c, 0x00, 0x0c, 0x04, 0x08}, // ;
	0x3c: {0x02, 0x04, 0x08, 0x10, 0x08, 0x04, 0x02}, // <
	0x3d: {0x00, 0x00, 0x1f, 0x00, 0x1f, 0x00, 0x00}, // =
	0x3e: {0x08, 0x04, 0x02, 0x01, 0x02, 0x04, 0x08}, // >
	0x3f: {0x0e, 0x11, 0x01, 0x02, 0x04, 0x00, 0x04}, // ?
	0x40: {0x0e, 0x11, 0x01, 0x0d, 0x15, 0x15, 0x0e}, // @
	0x41: {0x0e, 0x11, 0x11, 0x11, 0x1f, 0x11, 0x11}, // A
	0x42: {0x1e, 0x11, 0x11, 0x1e, 0x11, 0x11, 0x1e}, // B
	0x43: {0x0e, 0x11, 0x10, 0x10, 0x10, 0x11, 0x0e}, // C
	0x44: {0x1c, 0x12, 0x11, 0x11, 0x11, 0x12, 0x1c}, // D
	0x45: {0x1f, 0x10, 0x10, 0x1e, 0x10, 0x10, 0x1f}, // E
	0x46: {0x1f, 0x10, 0x10, 0x1e, 0x10, 0x10, 0x10}, // F
	0x47: {0x0e, 0x11, 0x10, 0x17, 0x11, 0x11, 0x0f}, // G
	0x48: {0x11, 0x11, 0x11, 0x1f, 0x11, 0x11, 0x11}, // H
	0x49: {0x0e, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0e}, // I
	0x4a: {0x07, 0x02, 0x02, 0x02, 0x02, 0x12, 0x0c}, // J
	0x4b: {0x11, 0x12, 0x14, 0x18, 0x14, 0x12, 0x11}, // K
	0x4c: {0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x1f}, // L
	0x4d: {0x11, 0x1b, 0x15, 0x15, 0x11, 0x11, 0x11}, // M
	0x4e: {0x11, 0x11, 0x19, 0x15, 0x13, 0x11, 0x11}, // N
	0x4f: {0x0e, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0e}, // O
	0x50: {0x1e, 0x11, 0x11, 0x1e, 0x10, 0x10, 0x10}, // P
	0x51: {0x0e, 0x11, 0x11, 0x11, 0x15, 0x12, 0x0d}, // Q
	0x52: {0x1e, 0x11, 0x11, 0x1e, 0x14, 0x12, 0x11}, // R
	0x53: {0x0f, 0x10, 0x10, 0x0e, 0x01, 0x01, 0x1e}, // S
	0x54: {0x1f, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04}, // T
	0x55: {0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0e}, // U
	0x56: {0x11, 0x11, 0x11, 0x11, 0x11, 0x0a, 0x04}, // V
	0x57: {0x11, 0x11, 0x11, 0x15, 0x15, 0x15, 0x0a}, // W
	0x58: {0x11, 0x11, 0x0a, 0x04, 0x0a, 0x11, 0x11}, // X
	0x59: {0x11, 0x11, 0x11, 0x0a, 0x04, 0x04, 0x04}, // Y
	0x5a: {0x1f, 0x01, 0x02, 0x04, 0x08, 0x10, 0x1f}, // Z
	0x5b: {0x0e, 0x08, 0x08, 0x08, 0x08, 0x08, 0x0e}, // [
	0x5c: {0x00, 0x10, 0x08, 0x04, 0x02, 0x01, 0x00}, // backslash
	0x5d: {0x0e, 0x02, 0x02, 0x02, 0x02, 0x02, 0x0e}, // ]
	0x5e: {0x04, 0x0a, 0x11, 0x00, 0x00, 0x00, 0x00}, // ^
	0x5f: {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x1f}, // _
	0x60: {0x08, 0x04, 0x02, 0x00, 0x00, 0x00, 0x00}, // `
	0x61: {0x00, 0x00, 0x0e, 0x01, 0x0f, 0x11, 0x0f}, // a
	0x62: {0x10, 0x10, 0x16, 0x19, 0x11, 0x11, 0x1e}, // b
	0x63: {0x00, 0x00, 0x0e, 0x10, 0x10, 0x11, 0x0e}, // c
	0x64: {0x01, 0x01, 0x0d, 0x13, 0x11, 0x11, 0x0f}, // d
	0x65: {0x00, 0x00, 0x0e, 0x11, 0x1f, 0x10, 0x0e}, // e
	0x66: {0x06, 0x09, 0x08, 0x1c, 0x08, 0x08, 0x08}, // f
	0x67: {0x00, 0x0f, 0x11, 0x11, 0x0f, 0x01, 0x0e}, // g
	0x68: {0x10, 0x10, 0x16, 0x19, 0x11, 0x11, 0x11}, // h
	0x69: {0x04, 0x00, 0x0c, 0x04, 0x04, 0x04, 0x0e}, // i
	0x6a: {0x02, 0x00, 0x06, 0x02, 0x02, 0x12, 0x0c}, // j
	0x6b: {0x10, 0x10, 0x12, 0x14, 0x18, 0x14, 0x12}, // k
	0x6c: {0x0c, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0e}, // l
	0x6d: {0x00, 0x00, 0x1a, 0x15, 0x15, 0x11, 0x11}, // m
	0x6e: {0x00, 0x00, 0x16, 0x19, 0x11, 0x11, 0x11}, // n
	0x6f: {0x00, 0x00, 0x0e, 0x11, 0x11, 0x11, 0x0e}, // o
	0x70: {0x00, 0x00, 0x1e, 0x11, 0x1e, 0x10, 0x10}, // p
	0x71: {0x00, 0x00, 0x0d, 0x13, 0x0f, 0x01, 0x01}, // q
	0x72: {0x00, 0x00, 0x16, 0x19, 0x10, 0x10, 0x10}, // r
	0x73: {0x00, 0x00, 0x0e, 0x10, 0x0e, 0x01, 0x1e}, // s
	0x74: {0x08, 0x08, 0x1c, 0x08, 0x08, 0x09, 0x06}, // t
	0x75: {0x00, 0x00, 0x11, 0x11, 0x11, 0x13, 0x0d}, // u
	0x76: {0x00, 0x00, 0x11, 0x11, 0x11, 0x0a, 0x04}, // v
	0x77: {0x00, 0x00, 0x11, 0x11, 0x15, 0x15, 0x0a}, // w
	0x78: {0x00, 0x00, 0x11, 0x0a, 0x04, 0x0a, 0x11}, // x
	0x79: {0x00, 0x00, 0x11, 0x11, 0x0f, 0x01, 0x0e}, // y
	0x7a: {0x00, 0x00, 0x1f, 0x02, 0x04, 0x08, 0x1f}, // z
	0x7b: {0x02, 0x04, 0x04, 0x08, 0x04, 0x04, 0x02}, // {
	0x7c: {0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04}, // |
	0x7d: {0x08, 0x04, 0x04, 0x02, 0x04, 0x04, 0x08}, // }
	0x7e: {0x00, 0x00, 0x08, 0x15, 0x02, 0x00, 0x00}, // ~
	0xa8: {0x0a, 0x1f, 0x10, 0x1e, 0x10, 0x10, 0x1f}, // Ё
	0xc0: {0x0e, 0x11, 0x11, 0x11, 0x1f, 0x11, 0x11}, // А
	0xc1: {0x1f, 0x10, 0x10, 0x1e, 0x11, 0x11, 0x1e}, // Б
	0xc2: {0x1e, 0x11, 0x11, 0x1e, 0x11, 0x11, 0x1e}, // В
	0xc3: {0x1f, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10}, // Г
	0xc4: {0x06, 0x0a, 0x0a, 0x0a, 0x0a, 0x1f, 0x11}, // Д
	0xc5: {0x1f, 0x10, 0x10, 0x1e, 0x10, 0x10, 0x1f}, // Е
	0xc6: {0x15, 0x15, 0x15, 0x0e, 0x15, 0x15, 0x15}, // Ж
	0xc7: {0x0e, 0x11, 0x01, 0x06, 0x01, 0x11, 0x0e}, // З
	0xc8: {0x11, 0x11, 0x13, 0x15, 0x19, 0x11, 0x11}, // И
	0xc9: {0x0a, 0x04, 0x11, 0x13, 0x15, 0x19, 0x11}, // Й
	0xca: {0x11, 0x12, 0x14, 0x18, 0x14, 0x12, 0x11}, // К
	0xcb: {0x07, 0x09, 0x09, 0x09, 0x09, 0x09, 0x11}, // Л
	0xcc: {0x11, 0x1b, 0x15, 0x15, 0x11, 0x11, 0x11}, // М
	0xcd: {0x11, 0x11, 0x11, 0x1f, 0x11, 0x11, 0x11}, // Н
	0xce: {0x0e, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0e}, // О
	0xcf: {0x1f, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11}, // П
	0xd0: {0x1e, 0x11, 0x11, 0x1e, 0x10, 0x10, 0x10}, // Р
	0xd1: {0x0e, 0x11, 0x10, 0x10, 0x10, 0x11, 0x0e}, // С
	0xd2: {0x1f, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04}, // Т
	0xd3: {0x11, 0x11, 0x11, 0x0f, 0x01, 0x11, 0x0e}, // У
	0xd4: {0x04, 0x0e, 0x15, 0x15, 0x15, 0x0e, 0x04}, // Ф
	0xd5: {0x11, 0x11, 0x0a, 0x04, 0x0a, 0x11, 0x11}, // Х
	0xd6: {0x12, 0x12, 0x12, 0x12, 0x12, 0x1f, 0x01}, // Ц
	0xd7: {0x11, 0x11, 0x11, 0x0f, 0x01, 0x01, 0x01}, // Ч
	0xd8: {0x15, 0x15, 0x15, 0x15, 0x15, 0x15, 0x1f}, // Ш
	0xd9: {0x15, 0x15, 0x15, 0x15, 0x15, 0x1f, 0x01}, // Щ
	0xda: {0x18, 0x08, 0x08, 0x0e, 0x09, 0x09, 0x0e}, // Ъ
	0xdb: {0x11, 0x11, 0x11, 0x19, 0x15, 0x15, 0x19}, // Ы
	0xdc: {0x10, 0x10, 0x10, 0x1e, 0x11, 0x11, 0x1e}, // Ь
	0xdd: {0x0e, 0x11, 0x01, 0x0f, 0x01, 0x11, 0x0e}, // Э
	0xde: {0x12, 0x15, 0x15, 0x1d, 0x15, 0x15, 0x12}, // Ю
	0xdf: {0x0f, 0x11, 0x11, 0x0f, 0x09, 0x11, 0x11}, // Я
}

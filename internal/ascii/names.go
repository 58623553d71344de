package ascii

// names holds the display form of every ASCII code, indexed by code.
var names = [Size]string{
	0x00: `NUL '\0' (null character)`,
	0x01: `SOH (start of heading)`,
	0x02: `STX (start of text)`,
	0x03: `ETX (end of text)`,
	0x04: `EOT (end of transmission)`,
	0x05: `ENQ (enquiry)`,
	0x06: `ACK (acknowledge)`,
	0x07: `BEL '\a' (bell)`,
	0x08: `BS  '\b' (backspace)`,
	0x09: `HT  '\t' (horizontal tab)`,
	0x0A: `LF  '\n' (new line)`,
	0x0B: `VT  '\v' (vertical tab)`,
	0x0C: `FF  '\f' (form feed)`,
	0x0D: `CR  '\r' (carriage ret)`,
	0x0E: `SO  (shift out)`,
	0x0F: `SI  (shift in)`,
	0x10: `DLE (data link escape)`,
	0x11: `DC1 (device control 1)`,
	0x12: `DC2 (device control 2)`,
	0x13: `DC3 (device control 3)`,
	0x14: `DC4 (device control 4)`,
	0x15: `NAK (negative ack.)`,
	0x16: `SYN (synchronous idle)`,
	0x17: `ETB (end of trans. blk)`,
	0x18: `CAN (cancel)`,
	0x19: `EM  (end of medium)`,
	0x1A: `SUB (substitute)`,
	0x1B: `ESC (escape)`,
	0x1C: `FS  (file separator)`,
	0x1D: `GS  (group separator)`,
	0x1E: `RS  (record separator)`,
	0x1F: `US  (unit separator)`,
	0x20: `SPACE`,
	0x21: `!`,
	0x22: `"`,
	0x23: `#`,
	0x24: `$`,
	0x25: `%`,
	0x26: `&`,
	0x27: `'`,
	0x28: `(`,
	0x29: `)`,
	0x2A: `*`,
	0x2B: `+`,
	0x2C: `,`,
	0x2D: `-`,
	0x2E: `.`,
	0x2F: `/`,
	0x30: `0`,
	0x31: `1`,
	0x32: `2`,
	0x33: `3`,
	0x34: `4`,
	0x35: `5`,
	0x36: `6`,
	0x37: `7`,
	0x38: `8`,
	0x39: `9`,
	0x3A: `:`,
	0x3B: `;`,
	0x3C: `<`,
	0x3D: `=`,
	0x3E: `>`,
	0x3F: `?`,
	0x40: `@`,
	0x41: `A`,
	0x42: `B`,
	0x43: `C`,
	0x44: `D`,
	0x45: `E`,
	0x46: `F`,
	0x47: `G`,
	0x48: `H`,
	0x49: `I`,
	0x4A: `J`,
	0x4B: `K`,
	0x4C: `L`,
	0x4D: `M`,
	0x4E: `N`,
	0x4F: `O`,
	0x50: `P`,
	0x51: `Q`,
	0x52: `R`,
	0x53: `S`,
	0x54: `T`,
	0x55: `U`,
	0x56: `V`,
	0x57: `W`,
	0x58: `X`,
	0x59: `Y`,
	0x5A: `Z`,
	0x5B: `[`,
	0x5C: `\  '\\'`,
	0x5D: `]`,
	0x5E: `^`,
	0x5F: `_`,
	0x60: "`",
	0x61: `a`,
	0x62: `b`,
	0x63: `c`,
	0x64: `d`,
	0x65: `e`,
	0x66: `f`,
	0x67: `g`,
	0x68: `h`,
	0x69: `i`,
	0x6A: `j`,
	0x6B: `k`,
	0x6C: `l`,
	0x6D: `m`,
	0x6E: `n`,
	0x6F: `o`,
	0x70: `p`,
	0x71: `q`,
	0x72: `r`,
	0x73: `s`,
	0x74: `t`,
	0x75: `u`,
	0x76: `v`,
	0x77: `w`,
	0x78: `x`,
	0x79: `y`,
	0x7A: `z`,
	0x7B: `{`,
	0x7C: `|`,
	0x7D: `}`,
	0x7E: `~`,
	0x7F: `DEL`,
}

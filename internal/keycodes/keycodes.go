// Package keycodes provides the Linux evdev KeyCode namespace: the
// dense small-integer codes the kernel uses for keys and buttons, and
// the textual names used in configuration files and CLI output.
package keycodes

import "sort"

// KeyCode is an opaque identifier drawn from the evdev key-code
// namespace (KEY_* and BTN_* constants from linux/input-event-codes.h).
type KeyCode uint16

// KeyValue is the state a KeyCode transitions to on the wire: a
// release, a press, or an autorepeat while held.
type KeyValue int32

const (
	Release KeyValue = 0
	Press   KeyValue = 1
	Repeat  KeyValue = 2
)

func (v KeyValue) String() string {
	switch v {
	case Release:
		return "release"
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	default:
		return "unknown"
	}
}

// Evdev key and button codes, transcribed from linux/input-event-codes.h.
const (
	KEY_RESERVED             KeyCode = 0
	KEY_ESC                  KeyCode = 1
	KEY_1                    KeyCode = 2
	KEY_2                    KeyCode = 3
	KEY_3                    KeyCode = 4
	KEY_4                    KeyCode = 5
	KEY_5                    KeyCode = 6
	KEY_6                    KeyCode = 7
	KEY_7                    KeyCode = 8
	KEY_8                    KeyCode = 9
	KEY_9                    KeyCode = 10
	KEY_0                    KeyCode = 11
	KEY_MINUS                KeyCode = 12
	KEY_EQUAL                KeyCode = 13
	KEY_BACKSPACE            KeyCode = 14
	KEY_TAB                  KeyCode = 15
	KEY_Q                    KeyCode = 16
	KEY_W                    KeyCode = 17
	KEY_E                    KeyCode = 18
	KEY_R                    KeyCode = 19
	KEY_T                    KeyCode = 20
	KEY_Y                    KeyCode = 21
	KEY_U                    KeyCode = 22
	KEY_I                    KeyCode = 23
	KEY_O                    KeyCode = 24
	KEY_P                    KeyCode = 25
	KEY_LEFTBRACE            KeyCode = 26
	KEY_RIGHTBRACE           KeyCode = 27
	KEY_ENTER                KeyCode = 28
	KEY_LEFTCTRL             KeyCode = 29
	KEY_A                    KeyCode = 30
	KEY_S                    KeyCode = 31
	KEY_D                    KeyCode = 32
	KEY_F                    KeyCode = 33
	KEY_G                    KeyCode = 34
	KEY_H                    KeyCode = 35
	KEY_J                    KeyCode = 36
	KEY_K                    KeyCode = 37
	KEY_L                    KeyCode = 38
	KEY_SEMICOLON            KeyCode = 39
	KEY_APOSTROPHE           KeyCode = 40
	KEY_GRAVE                KeyCode = 41
	KEY_LEFTSHIFT            KeyCode = 42
	KEY_BACKSLASH            KeyCode = 43
	KEY_Z                    KeyCode = 44
	KEY_X                    KeyCode = 45
	KEY_C                    KeyCode = 46
	KEY_V                    KeyCode = 47
	KEY_B                    KeyCode = 48
	KEY_N                    KeyCode = 49
	KEY_M                    KeyCode = 50
	KEY_COMMA                KeyCode = 51
	KEY_DOT                  KeyCode = 52
	KEY_SLASH                KeyCode = 53
	KEY_RIGHTSHIFT           KeyCode = 54
	KEY_KPASTERISK           KeyCode = 55
	KEY_LEFTALT              KeyCode = 56
	KEY_SPACE                KeyCode = 57
	KEY_CAPSLOCK             KeyCode = 58
	KEY_F1                   KeyCode = 59
	KEY_F2                   KeyCode = 60
	KEY_F3                   KeyCode = 61
	KEY_F4                   KeyCode = 62
	KEY_F5                   KeyCode = 63
	KEY_F6                   KeyCode = 64
	KEY_F7                   KeyCode = 65
	KEY_F8                   KeyCode = 66
	KEY_F9                   KeyCode = 67
	KEY_F10                  KeyCode = 68
	KEY_NUMLOCK              KeyCode = 69
	KEY_SCROLLLOCK           KeyCode = 70
	KEY_KP7                  KeyCode = 71
	KEY_KP8                  KeyCode = 72
	KEY_KP9                  KeyCode = 73
	KEY_KPMINUS              KeyCode = 74
	KEY_KP4                  KeyCode = 75
	KEY_KP5                  KeyCode = 76
	KEY_KP6                  KeyCode = 77
	KEY_KPPLUS               KeyCode = 78
	KEY_KP1                  KeyCode = 79
	KEY_KP2                  KeyCode = 80
	KEY_KP3                  KeyCode = 81
	KEY_KP0                  KeyCode = 82
	KEY_KPDOT                KeyCode = 83
	KEY_ZENKAKUHANKAKU       KeyCode = 85
	KEY_102ND                KeyCode = 86
	KEY_F11                  KeyCode = 87
	KEY_F12                  KeyCode = 88
	KEY_RO                   KeyCode = 89
	KEY_KATAKANA             KeyCode = 90
	KEY_HIRAGANA             KeyCode = 91
	KEY_HENKAN               KeyCode = 92
	KEY_KATAKANAHIRAGANA     KeyCode = 93
	KEY_MUHENKAN             KeyCode = 94
	KEY_KPJPCOMMA            KeyCode = 95
	KEY_KPENTER              KeyCode = 96
	KEY_RIGHTCTRL            KeyCode = 97
	KEY_KPSLASH              KeyCode = 98
	KEY_SYSRQ                KeyCode = 99
	KEY_RIGHTALT             KeyCode = 100
	KEY_LINEFEED             KeyCode = 101
	KEY_HOME                 KeyCode = 102
	KEY_UP                   KeyCode = 103
	KEY_PAGEUP               KeyCode = 104
	KEY_LEFT                 KeyCode = 105
	KEY_RIGHT                KeyCode = 106
	KEY_END                  KeyCode = 107
	KEY_DOWN                 KeyCode = 108
	KEY_PAGEDOWN             KeyCode = 109
	KEY_INSERT               KeyCode = 110
	KEY_DELETE               KeyCode = 111
	KEY_MACRO                KeyCode = 112
	KEY_MUTE                 KeyCode = 113
	KEY_VOLUMEDOWN           KeyCode = 114
	KEY_VOLUMEUP             KeyCode = 115
	KEY_POWER                KeyCode = 116
	KEY_KPEQUAL              KeyCode = 117
	KEY_KPPLUSMINUS          KeyCode = 118
	KEY_PAUSE                KeyCode = 119
	KEY_SCALE                KeyCode = 120
	KEY_KPCOMMA              KeyCode = 121
	KEY_HANGEUL              KeyCode = 122
	KEY_HANJA                KeyCode = 123
	KEY_YEN                  KeyCode = 124
	KEY_LEFTMETA             KeyCode = 125
	KEY_RIGHTMETA            KeyCode = 126
	KEY_COMPOSE              KeyCode = 127
	KEY_STOP                 KeyCode = 128
	KEY_AGAIN                KeyCode = 129
	KEY_PROPS                KeyCode = 130
	KEY_UNDO                 KeyCode = 131
	KEY_FRONT                KeyCode = 132
	KEY_COPY                 KeyCode = 133
	KEY_OPEN                 KeyCode = 134
	KEY_PASTE                KeyCode = 135
	KEY_FIND                 KeyCode = 136
	KEY_CUT                  KeyCode = 137
	KEY_HELP                 KeyCode = 138
	KEY_MENU                 KeyCode = 139
	KEY_CALC                 KeyCode = 140
	KEY_SETUP                KeyCode = 141
	KEY_SLEEP                KeyCode = 142
	KEY_WAKEUP               KeyCode = 143
	KEY_FILE                 KeyCode = 144
	KEY_SENDFILE             KeyCode = 145
	KEY_DELETEFILE           KeyCode = 146
	KEY_XFER                 KeyCode = 147
	KEY_PROG1                KeyCode = 148
	KEY_PROG2                KeyCode = 149
	KEY_WWW                  KeyCode = 150
	KEY_MSDOS                KeyCode = 151
	KEY_COFFEE               KeyCode = 152
	KEY_ROTATE_DISPLAY       KeyCode = 153
	KEY_CYCLEWINDOWS         KeyCode = 154
	KEY_MAIL                 KeyCode = 155
	KEY_BOOKMARKS            KeyCode = 156
	KEY_COMPUTER             KeyCode = 157
	KEY_BACK                 KeyCode = 158
	KEY_FORWARD              KeyCode = 159
	KEY_CLOSECD              KeyCode = 160
	KEY_EJECTCD              KeyCode = 161
	KEY_EJECTCLOSECD         KeyCode = 162
	KEY_NEXTSONG             KeyCode = 163
	KEY_PLAYPAUSE            KeyCode = 164
	KEY_PREVIOUSSONG         KeyCode = 165
	KEY_STOPCD               KeyCode = 166
	KEY_RECORD               KeyCode = 167
	KEY_REWIND               KeyCode = 168
	KEY_PHONE                KeyCode = 169
	KEY_ISO                  KeyCode = 170
	KEY_CONFIG               KeyCode = 171
	KEY_HOMEPAGE             KeyCode = 172
	KEY_REFRESH              KeyCode = 173
	KEY_EXIT                 KeyCode = 174
	KEY_MOVE                 KeyCode = 175
	KEY_EDIT                 KeyCode = 176
	KEY_SCROLLUP             KeyCode = 177
	KEY_SCROLLDOWN           KeyCode = 178
	KEY_KPLEFTPAREN          KeyCode = 179
	KEY_KPRIGHTPAREN         KeyCode = 180
	KEY_NEW                  KeyCode = 181
	KEY_REDO                 KeyCode = 182
	KEY_F13                  KeyCode = 183
	KEY_F14                  KeyCode = 184
	KEY_F15                  KeyCode = 185
	KEY_F16                  KeyCode = 186
	KEY_F17                  KeyCode = 187
	KEY_F18                  KeyCode = 188
	KEY_F19                  KeyCode = 189
	KEY_F20                  KeyCode = 190
	KEY_F21                  KeyCode = 191
	KEY_F22                  KeyCode = 192
	KEY_F23                  KeyCode = 193
	KEY_F24                  KeyCode = 194
	KEY_PLAYCD               KeyCode = 200
	KEY_PAUSECD              KeyCode = 201
	KEY_PROG3                KeyCode = 202
	KEY_PROG4                KeyCode = 203
	KEY_ALL_APPLICATIONS     KeyCode = 204
	KEY_SUSPEND              KeyCode = 205
	KEY_CLOSE                KeyCode = 206
	KEY_PLAY                 KeyCode = 207
	KEY_FASTFORWARD          KeyCode = 208
	KEY_BASSBOOST            KeyCode = 209
	KEY_PRINT                KeyCode = 210
	KEY_HP                   KeyCode = 211
	KEY_CAMERA               KeyCode = 212
	KEY_SOUND                KeyCode = 213
	KEY_QUESTION             KeyCode = 214
	KEY_EMAIL                KeyCode = 215
	KEY_CHAT                 KeyCode = 216
	KEY_SEARCH               KeyCode = 217
	KEY_CONNECT              KeyCode = 218
	KEY_FINANCE              KeyCode = 219
	KEY_SPORT                KeyCode = 220
	KEY_SHOP                 KeyCode = 221
	KEY_ALTERASE             KeyCode = 222
	KEY_CANCEL               KeyCode = 223
	KEY_BRIGHTNESSDOWN       KeyCode = 224
	KEY_BRIGHTNESSUP         KeyCode = 225
	KEY_MEDIA                KeyCode = 226
	KEY_SWITCHVIDEOMODE      KeyCode = 227
	KEY_KBDILLUMTOGGLE       KeyCode = 228
	KEY_KBDILLUMDOWN         KeyCode = 229
	KEY_KBDILLUMUP           KeyCode = 230
	KEY_SEND                 KeyCode = 231
	KEY_REPLY                KeyCode = 232
	KEY_FORWARDMAIL          KeyCode = 233
	KEY_SAVE                 KeyCode = 234
	KEY_DOCUMENTS            KeyCode = 235
	KEY_BATTERY              KeyCode = 236
	KEY_BLUETOOTH            KeyCode = 237
	KEY_WLAN                 KeyCode = 238
	KEY_UWB                  KeyCode = 239
	KEY_UNKNOWN              KeyCode = 240
	KEY_VIDEO_NEXT           KeyCode = 241
	KEY_VIDEO_PREV           KeyCode = 242
	KEY_BRIGHTNESS_CYCLE     KeyCode = 243
	KEY_BRIGHTNESS_AUTO      KeyCode = 244
	KEY_DISPLAY_OFF          KeyCode = 245
	KEY_WWAN                 KeyCode = 246
	KEY_RFKILL               KeyCode = 247
	KEY_MICMUTE              KeyCode = 248
	BTN_MISC                 KeyCode = 0x100
	BTN_0                    KeyCode = 0x100
	BTN_1                    KeyCode = 0x101
	BTN_2                    KeyCode = 0x102
	BTN_3                    KeyCode = 0x103
	BTN_4                    KeyCode = 0x104
	BTN_5                    KeyCode = 0x105
	BTN_6                    KeyCode = 0x106
	BTN_7                    KeyCode = 0x107
	BTN_8                    KeyCode = 0x108
	BTN_9                    KeyCode = 0x109
	BTN_MOUSE                KeyCode = 0x110
	BTN_LEFT                 KeyCode = 0x110
	BTN_RIGHT                KeyCode = 0x111
	BTN_MIDDLE               KeyCode = 0x112
	BTN_SIDE                 KeyCode = 0x113
	BTN_EXTRA                KeyCode = 0x114
	BTN_FORWARD              KeyCode = 0x115
	BTN_BACK                 KeyCode = 0x116
	BTN_TASK                 KeyCode = 0x117
	BTN_JOYSTICK             KeyCode = 0x120
	BTN_TRIGGER              KeyCode = 0x120
	BTN_THUMB                KeyCode = 0x121
	BTN_THUMB2               KeyCode = 0x122
	BTN_TOP                  KeyCode = 0x123
	BTN_TOP2                 KeyCode = 0x124
	BTN_PINKIE               KeyCode = 0x125
	BTN_BASE                 KeyCode = 0x126
	BTN_BASE2                KeyCode = 0x127
	BTN_BASE3                KeyCode = 0x128
	BTN_BASE4                KeyCode = 0x129
	BTN_BASE5                KeyCode = 0x12a
	BTN_BASE6                KeyCode = 0x12b
	BTN_DEAD                 KeyCode = 0x12f
	BTN_GAMEPAD              KeyCode = 0x130
	BTN_SOUTH                KeyCode = 0x130
	BTN_EAST                 KeyCode = 0x131
	BTN_C                    KeyCode = 0x132
	BTN_NORTH                KeyCode = 0x133
	BTN_WEST                 KeyCode = 0x134
	BTN_Z                    KeyCode = 0x135
	BTN_TL                   KeyCode = 0x136
	BTN_TR                   KeyCode = 0x137
	BTN_TL2                  KeyCode = 0x138
	BTN_TR2                  KeyCode = 0x139
	BTN_SELECT               KeyCode = 0x13a
	BTN_START                KeyCode = 0x13b
	BTN_MODE                 KeyCode = 0x13c
	BTN_THUMBL               KeyCode = 0x13d
	BTN_THUMBR               KeyCode = 0x13e
	BTN_DIGI                 KeyCode = 0x140
	BTN_TOOL_PEN             KeyCode = 0x140
	BTN_TOOL_RUBBER          KeyCode = 0x141
	BTN_TOOL_BRUSH           KeyCode = 0x142
	BTN_TOOL_PENCIL          KeyCode = 0x143
	BTN_TOOL_AIRBRUSH        KeyCode = 0x144
	BTN_TOOL_FINGER          KeyCode = 0x145
	BTN_TOOL_MOUSE           KeyCode = 0x146
	BTN_TOOL_LENS            KeyCode = 0x147
	BTN_TOOL_QUINTTAP        KeyCode = 0x148
	BTN_STYLUS3              KeyCode = 0x149
	BTN_TOUCH                KeyCode = 0x14a
	BTN_STYLUS               KeyCode = 0x14b
	BTN_STYLUS2              KeyCode = 0x14c
	BTN_TOOL_DOUBLETAP       KeyCode = 0x14d
	BTN_TOOL_TRIPLETAP       KeyCode = 0x14e
	BTN_TOOL_QUADTAP         KeyCode = 0x14f
	BTN_WHEEL                KeyCode = 0x150
	BTN_GEAR_UP              KeyCode = 0x151
	KEY_OK                   KeyCode = 0x160
	KEY_SELECT               KeyCode = 0x161
	KEY_GOTO                 KeyCode = 0x162
	KEY_CLEAR                KeyCode = 0x163
	KEY_POWER2               KeyCode = 0x164
	KEY_OPTION               KeyCode = 0x165
	KEY_INFO                 KeyCode = 0x166
	KEY_TIME                 KeyCode = 0x167
	KEY_VENDOR               KeyCode = 0x168
	KEY_ARCHIVE              KeyCode = 0x169
	KEY_PROGRAM              KeyCode = 0x16a
	KEY_CHANNEL              KeyCode = 0x16b
	KEY_FAVORITES            KeyCode = 0x16c
	KEY_EPG                  KeyCode = 0x16d
	KEY_PVR                  KeyCode = 0x16e
	KEY_MHP                  KeyCode = 0x16f
	KEY_LANGUAGE             KeyCode = 0x170
	KEY_TITLE                KeyCode = 0x171
	KEY_SUBTITLE             KeyCode = 0x172
	KEY_ANGLE                KeyCode = 0x173
	KEY_FULL_SCREEN          KeyCode = 0x174
	KEY_MODE                 KeyCode = 0x175
	KEY_KEYBOARD             KeyCode = 0x176
	KEY_ASPECT_RATIO         KeyCode = 0x177
	KEY_PC                   KeyCode = 0x178
	KEY_TV                   KeyCode = 0x179
	KEY_TV2                  KeyCode = 0x17a
	KEY_VCR                  KeyCode = 0x17b
	KEY_VCR2                 KeyCode = 0x17c
	KEY_SAT                  KeyCode = 0x17d
	KEY_SAT2                 KeyCode = 0x17e
	KEY_CD                   KeyCode = 0x17f
	KEY_TAPE                 KeyCode = 0x180
	KEY_RADIO                KeyCode = 0x181
	KEY_TUNER                KeyCode = 0x182
	KEY_PLAYER               KeyCode = 0x183
	KEY_TEXT                 KeyCode = 0x184
	KEY_DVD                  KeyCode = 0x185
	KEY_AUX                  KeyCode = 0x186
	KEY_MP3                  KeyCode = 0x187
	KEY_AUDIO                KeyCode = 0x188
	KEY_VIDEO                KeyCode = 0x189
	KEY_DIRECTORY            KeyCode = 0x18a
	KEY_LIST                 KeyCode = 0x18b
	KEY_MEMO                 KeyCode = 0x18c
	KEY_CALENDAR             KeyCode = 0x18d
	KEY_RED                  KeyCode = 0x18e
	KEY_GREEN                KeyCode = 0x18f
	KEY_YELLOW               KeyCode = 0x190
	KEY_BLUE                 KeyCode = 0x191
	KEY_CHANNELUP            KeyCode = 0x192
	KEY_CHANNELDOWN          KeyCode = 0x193
	KEY_FIRST                KeyCode = 0x194
	KEY_LAST                 KeyCode = 0x195
	KEY_AB                   KeyCode = 0x196
	KEY_NEXT                 KeyCode = 0x197
	KEY_RESTART              KeyCode = 0x198
	KEY_SLOW                 KeyCode = 0x199
	KEY_SHUFFLE              KeyCode = 0x19a
	KEY_BREAK                KeyCode = 0x19b
	KEY_PREVIOUS             KeyCode = 0x19c
	KEY_DIGITS               KeyCode = 0x19d
	KEY_TEEN                 KeyCode = 0x19e
	KEY_TWEN                 KeyCode = 0x19f
	KEY_VIDEOPHONE           KeyCode = 0x1a0
	KEY_GAMES                KeyCode = 0x1a1
	KEY_ZOOMIN               KeyCode = 0x1a2
	KEY_ZOOMOUT              KeyCode = 0x1a3
	KEY_ZOOMRESET            KeyCode = 0x1a4
	KEY_WORDPROCESSOR        KeyCode = 0x1a5
	KEY_EDITOR               KeyCode = 0x1a6
	KEY_SPREADSHEET          KeyCode = 0x1a7
	KEY_GRAPHICSEDITOR       KeyCode = 0x1a8
	KEY_PRESENTATION         KeyCode = 0x1a9
	KEY_DATABASE             KeyCode = 0x1aa
	KEY_NEWS                 KeyCode = 0x1ab
	KEY_VOICEMAIL            KeyCode = 0x1ac
	KEY_ADDRESSBOOK          KeyCode = 0x1ad
	KEY_MESSENGER            KeyCode = 0x1ae
	KEY_DISPLAYTOGGLE        KeyCode = 0x1af
	KEY_SPELLCHECK           KeyCode = 0x1b0
	KEY_LOGOFF               KeyCode = 0x1b1
	KEY_DOLLAR               KeyCode = 0x1b2
	KEY_EURO                 KeyCode = 0x1b3
	KEY_FRAMEBACK            KeyCode = 0x1b4
	KEY_FRAMEFORWARD         KeyCode = 0x1b5
	KEY_CONTEXT_MENU         KeyCode = 0x1b6
	KEY_MEDIA_REPEAT         KeyCode = 0x1b7
	KEY_10CHANNELSUP         KeyCode = 0x1b8
	KEY_10CHANNELSDOWN       KeyCode = 0x1b9
	KEY_IMAGES               KeyCode = 0x1ba
	KEY_NOTIFICATION_CENTER  KeyCode = 0x1bc
	KEY_PICKUP_PHONE         KeyCode = 0x1bd
	KEY_HANGUP_PHONE         KeyCode = 0x1be
	KEY_LINK_PHONE           KeyCode = 0x1bf
	KEY_DEL_EOL              KeyCode = 0x1c0
	KEY_DEL_EOS              KeyCode = 0x1c1
	KEY_INS_LINE             KeyCode = 0x1c2
	KEY_DEL_LINE             KeyCode = 0x1c3
	KEY_FN                   KeyCode = 0x1d0
	KEY_FN_ESC               KeyCode = 0x1d1
	KEY_FN_F1                KeyCode = 0x1d2
	KEY_FN_F2                KeyCode = 0x1d3
	KEY_FN_F3                KeyCode = 0x1d4
	KEY_FN_F4                KeyCode = 0x1d5
	KEY_FN_F5                KeyCode = 0x1d6
	KEY_FN_F6                KeyCode = 0x1d7
	KEY_FN_F7                KeyCode = 0x1d8
	KEY_FN_F8                KeyCode = 0x1d9
	KEY_FN_F9                KeyCode = 0x1da
	KEY_FN_F10               KeyCode = 0x1db
	KEY_FN_F11               KeyCode = 0x1dc
	KEY_FN_F12               KeyCode = 0x1dd
	KEY_FN_1                 KeyCode = 0x1de
	KEY_FN_2                 KeyCode = 0x1df
	KEY_FN_D                 KeyCode = 0x1e0
	KEY_FN_E                 KeyCode = 0x1e1
	KEY_FN_F                 KeyCode = 0x1e2
	KEY_FN_S                 KeyCode = 0x1e3
	KEY_FN_B                 KeyCode = 0x1e4
	KEY_FN_RIGHT_SHIFT       KeyCode = 0x1e5
	KEY_BRL_DOT1             KeyCode = 0x1f1
	KEY_BRL_DOT2             KeyCode = 0x1f2
	KEY_BRL_DOT3             KeyCode = 0x1f3
	KEY_BRL_DOT4             KeyCode = 0x1f4
	KEY_BRL_DOT5             KeyCode = 0x1f5
	KEY_BRL_DOT6             KeyCode = 0x1f6
	KEY_BRL_DOT7             KeyCode = 0x1f7
	KEY_BRL_DOT8             KeyCode = 0x1f8
	KEY_BRL_DOT9             KeyCode = 0x1f9
	KEY_BRL_DOT10            KeyCode = 0x1fa
	KEY_NUMERIC_0            KeyCode = 0x200
	KEY_NUMERIC_1            KeyCode = 0x201
	KEY_NUMERIC_2            KeyCode = 0x202
	KEY_NUMERIC_3            KeyCode = 0x203
	KEY_NUMERIC_4            KeyCode = 0x204
	KEY_NUMERIC_5            KeyCode = 0x205
	KEY_NUMERIC_6            KeyCode = 0x206
	KEY_NUMERIC_7            KeyCode = 0x207
	KEY_NUMERIC_8            KeyCode = 0x208
	KEY_NUMERIC_9            KeyCode = 0x209
	KEY_NUMERIC_STAR         KeyCode = 0x20a
	KEY_NUMERIC_POUND        KeyCode = 0x20b
	KEY_NUMERIC_A            KeyCode = 0x20c
	KEY_NUMERIC_B            KeyCode = 0x20d
	KEY_NUMERIC_C            KeyCode = 0x20e
	KEY_NUMERIC_D            KeyCode = 0x20f
	KEY_CAMERA_FOCUS         KeyCode = 0x210
	KEY_WPS_BUTTON           KeyCode = 0x211
	KEY_TOUCHPAD_TOGGLE      KeyCode = 0x212
	KEY_TOUCHPAD_ON          KeyCode = 0x213
	KEY_TOUCHPAD_OFF         KeyCode = 0x214
	KEY_CAMERA_ZOOMIN        KeyCode = 0x215
	KEY_CAMERA_ZOOMOUT       KeyCode = 0x216
	KEY_CAMERA_UP            KeyCode = 0x217
	KEY_CAMERA_DOWN          KeyCode = 0x218
	KEY_CAMERA_LEFT          KeyCode = 0x219
	KEY_CAMERA_RIGHT         KeyCode = 0x21a
	KEY_ATTENDANT_ON         KeyCode = 0x21b
	KEY_ATTENDANT_OFF        KeyCode = 0x21c
	KEY_ATTENDANT_TOGGLE     KeyCode = 0x21d
	KEY_LIGHTS_TOGGLE        KeyCode = 0x21e
	BTN_DPAD_UP              KeyCode = 0x220
	BTN_DPAD_DOWN            KeyCode = 0x221
	BTN_DPAD_LEFT            KeyCode = 0x222
	BTN_DPAD_RIGHT           KeyCode = 0x223
	KEY_ALS_TOGGLE           KeyCode = 0x230
	KEY_ROTATE_LOCK_TOGGLE   KeyCode = 0x231
	KEY_REFRESH_RATE_TOGGLE  KeyCode = 0x232
	KEY_BUTTONCONFIG         KeyCode = 0x240
	KEY_TASKMANAGER          KeyCode = 0x241
	KEY_JOURNAL              KeyCode = 0x242
	KEY_CONTROLPANEL         KeyCode = 0x243
	KEY_APPSELECT            KeyCode = 0x244
	KEY_SCREENSAVER          KeyCode = 0x245
	KEY_VOICECOMMAND         KeyCode = 0x246
	KEY_ASSISTANT            KeyCode = 0x247
	KEY_KBD_LAYOUT_NEXT      KeyCode = 0x248
	KEY_EMOJI_PICKER         KeyCode = 0x249
	KEY_DICTATE              KeyCode = 0x24a
	KEY_CAMERA_ACCESS_ENABLE KeyCode = 0x24b
	KEY_CAMERA_ACCESS_DISABLE KeyCode = 0x24c
	KEY_CAMERA_ACCESS_TOGGLE KeyCode = 0x24d
	KEY_ACCESSIBILITY        KeyCode = 0x24e
	KEY_DO_NOT_DISTURB       KeyCode = 0x24f
	KEY_BRIGHTNESS_MIN       KeyCode = 0x250
	KEY_BRIGHTNESS_MAX       KeyCode = 0x251
	KEY_KBDINPUTASSIST_PREV  KeyCode = 0x260
	KEY_KBDINPUTASSIST_NEXT  KeyCode = 0x261
	KEY_KBDINPUTASSIST_PREVGROUP KeyCode = 0x262
	KEY_KBDINPUTASSIST_NEXTGROUP KeyCode = 0x263
	KEY_KBDINPUTASSIST_ACCEPT KeyCode = 0x264
	KEY_KBDINPUTASSIST_CANCEL KeyCode = 0x265
	KEY_RIGHT_UP             KeyCode = 0x266
	KEY_RIGHT_DOWN           KeyCode = 0x267
	KEY_LEFT_UP              KeyCode = 0x268
	KEY_LEFT_DOWN            KeyCode = 0x269
	KEY_ROOT_MENU            KeyCode = 0x26a
	KEY_MEDIA_TOP_MENU       KeyCode = 0x26b
	KEY_NUMERIC_11           KeyCode = 0x26c
	KEY_NUMERIC_12           KeyCode = 0x26d
	KEY_AUDIO_DESC           KeyCode = 0x26e
	KEY_3D_MODE              KeyCode = 0x26f
	KEY_NEXT_FAVORITE        KeyCode = 0x270
	KEY_STOP_RECORD          KeyCode = 0x271
	KEY_PAUSE_RECORD         KeyCode = 0x272
	KEY_VOD                  KeyCode = 0x273
	KEY_UNMUTE               KeyCode = 0x274
	KEY_FASTREVERSE          KeyCode = 0x275
	KEY_SLOWREVERSE          KeyCode = 0x276
	KEY_DATA                 KeyCode = 0x277
	KEY_ONSCREEN_KEYBOARD    KeyCode = 0x278
	KEY_PRIVACY_SCREEN_TOGGLE KeyCode = 0x279
	KEY_SELECTIVE_SCREENSHOT KeyCode = 0x27a
	KEY_NEXT_ELEMENT         KeyCode = 0x27b
	KEY_PREVIOUS_ELEMENT     KeyCode = 0x27c
	KEY_AUTOPILOT_ENGAGE_TOGGLE KeyCode = 0x27d
	KEY_MARK_WAYPOINT        KeyCode = 0x27e
	KEY_SOS                  KeyCode = 0x27f
	KEY_NAV_CHART            KeyCode = 0x280
	KEY_FISHING_CHART        KeyCode = 0x281
	KEY_SINGLE_RANGE_RADAR   KeyCode = 0x282
	KEY_DUAL_RANGE_RADAR     KeyCode = 0x283
	KEY_RADAR_OVERLAY        KeyCode = 0x284
	KEY_TRADITIONAL_SONAR    KeyCode = 0x285
	KEY_CLEARVU_SONAR        KeyCode = 0x286
	KEY_SIDEVU_SONAR         KeyCode = 0x287
	KEY_NAV_INFO             KeyCode = 0x288
	KEY_BRIGHTNESS_MENU      KeyCode = 0x289
	KEY_MACRO1               KeyCode = 0x290
	KEY_MACRO2               KeyCode = 0x291
	KEY_MACRO3               KeyCode = 0x292
	KEY_MACRO4               KeyCode = 0x293
	KEY_MACRO5               KeyCode = 0x294
	KEY_MACRO6               KeyCode = 0x295
	KEY_MACRO7               KeyCode = 0x296
	KEY_MACRO8               KeyCode = 0x297
	KEY_MACRO9               KeyCode = 0x298
	KEY_MACRO10              KeyCode = 0x299
	KEY_MACRO11              KeyCode = 0x29a
	KEY_MACRO12              KeyCode = 0x29b
	KEY_MACRO13              KeyCode = 0x29c
	KEY_MACRO14              KeyCode = 0x29d
	KEY_MACRO15              KeyCode = 0x29e
	KEY_MACRO16              KeyCode = 0x29f
	KEY_MACRO17              KeyCode = 0x2a0
	KEY_MACRO18              KeyCode = 0x2a1
	KEY_MACRO19              KeyCode = 0x2a2
	KEY_MACRO20              KeyCode = 0x2a3
	KEY_MACRO21              KeyCode = 0x2a4
	KEY_MACRO22              KeyCode = 0x2a5
	KEY_MACRO23              KeyCode = 0x2a6
	KEY_MACRO24              KeyCode = 0x2a7
	KEY_MACRO25              KeyCode = 0x2a8
	KEY_MACRO26              KeyCode = 0x2a9
	KEY_MACRO27              KeyCode = 0x2aa
	KEY_MACRO28              KeyCode = 0x2ab
	KEY_MACRO29              KeyCode = 0x2ac
	KEY_MACRO30              KeyCode = 0x2ad
	KEY_MACRO_RECORD_START   KeyCode = 0x2b0
	KEY_MACRO_RECORD_STOP    KeyCode = 0x2b1
	KEY_MACRO_PRESET_CYCLE   KeyCode = 0x2b2
	KEY_MACRO_PRESET1        KeyCode = 0x2b3
	KEY_MACRO_PRESET2        KeyCode = 0x2b4
	KEY_MACRO_PRESET3        KeyCode = 0x2b5
	KEY_KBD_LCD_MENU1        KeyCode = 0x2b8
	KEY_KBD_LCD_MENU2        KeyCode = 0x2b9
	KEY_KBD_LCD_MENU3        KeyCode = 0x2ba
	KEY_KBD_LCD_MENU4        KeyCode = 0x2bb
	KEY_KBD_LCD_MENU5        KeyCode = 0x2bc
	BTN_TRIGGER_HAPPY        KeyCode = 0x2c0
	BTN_TRIGGER_HAPPY1       KeyCode = 0x2c0
	BTN_TRIGGER_HAPPY2       KeyCode = 0x2c1
	BTN_TRIGGER_HAPPY3       KeyCode = 0x2c2
	BTN_TRIGGER_HAPPY4       KeyCode = 0x2c3
	BTN_TRIGGER_HAPPY5       KeyCode = 0x2c4
	BTN_TRIGGER_HAPPY6       KeyCode = 0x2c5
	BTN_TRIGGER_HAPPY7       KeyCode = 0x2c6
	BTN_TRIGGER_HAPPY8       KeyCode = 0x2c7
	BTN_TRIGGER_HAPPY9       KeyCode = 0x2c8
	BTN_TRIGGER_HAPPY10      KeyCode = 0x2c9
	BTN_TRIGGER_HAPPY11      KeyCode = 0x2ca
	BTN_TRIGGER_HAPPY12      KeyCode = 0x2cb
	BTN_TRIGGER_HAPPY13      KeyCode = 0x2cc
	BTN_TRIGGER_HAPPY14      KeyCode = 0x2cd
	BTN_TRIGGER_HAPPY15      KeyCode = 0x2ce
	BTN_TRIGGER_HAPPY16      KeyCode = 0x2cf
	BTN_TRIGGER_HAPPY17      KeyCode = 0x2d0
	BTN_TRIGGER_HAPPY18      KeyCode = 0x2d1
	BTN_TRIGGER_HAPPY19      KeyCode = 0x2d2
	BTN_TRIGGER_HAPPY20      KeyCode = 0x2d3
	BTN_TRIGGER_HAPPY21      KeyCode = 0x2d4
	BTN_TRIGGER_HAPPY22      KeyCode = 0x2d5
	BTN_TRIGGER_HAPPY23      KeyCode = 0x2d6
	BTN_TRIGGER_HAPPY24      KeyCode = 0x2d7
	BTN_TRIGGER_HAPPY25      KeyCode = 0x2d8
	BTN_TRIGGER_HAPPY26      KeyCode = 0x2d9
	BTN_TRIGGER_HAPPY27      KeyCode = 0x2da
	BTN_TRIGGER_HAPPY28      KeyCode = 0x2db
	BTN_TRIGGER_HAPPY29      KeyCode = 0x2dc
	BTN_TRIGGER_HAPPY30      KeyCode = 0x2dd
	BTN_TRIGGER_HAPPY31      KeyCode = 0x2de
	BTN_TRIGGER_HAPPY32      KeyCode = 0x2df
	BTN_TRIGGER_HAPPY33      KeyCode = 0x2e0
	BTN_TRIGGER_HAPPY34      KeyCode = 0x2e1
	BTN_TRIGGER_HAPPY35      KeyCode = 0x2e2
	BTN_TRIGGER_HAPPY36      KeyCode = 0x2e3
	BTN_TRIGGER_HAPPY37      KeyCode = 0x2e4
	BTN_TRIGGER_HAPPY38      KeyCode = 0x2e5
	BTN_TRIGGER_HAPPY39      KeyCode = 0x2e6
	BTN_TRIGGER_HAPPY40      KeyCode = 0x2e7
	KEY_MAX                  KeyCode = 0x2ff
)

// codeToName maps a KeyCode to its canonical lowercase textual name
// (as accepted in config files, e.g. "key_capslock"). Where more than
// one constant shares a numeric value (kernel aliases such as
// BTN_LEFT == BTN_MOUSE) the first-declared name wins.
var codeToName = map[KeyCode]string{
	KEY_RESERVED: "key_reserved",
	KEY_ESC: "key_esc",
	KEY_1: "key_1",
	KEY_2: "key_2",
	KEY_3: "key_3",
	KEY_4: "key_4",
	KEY_5: "key_5",
	KEY_6: "key_6",
	KEY_7: "key_7",
	KEY_8: "key_8",
	KEY_9: "key_9",
	KEY_0: "key_0",
	KEY_MINUS: "key_minus",
	KEY_EQUAL: "key_equal",
	KEY_BACKSPACE: "key_backspace",
	KEY_TAB: "key_tab",
	KEY_Q: "key_q",
	KEY_W: "key_w",
	KEY_E: "key_e",
	KEY_R: "key_r",
	KEY_T: "key_t",
	KEY_Y: "key_y",
	KEY_U: "key_u",
	KEY_I: "key_i",
	KEY_O: "key_o",
	KEY_P: "key_p",
	KEY_LEFTBRACE: "key_leftbrace",
	KEY_RIGHTBRACE: "key_rightbrace",
	KEY_ENTER: "key_enter",
	KEY_LEFTCTRL: "key_leftctrl",
	KEY_A: "key_a",
	KEY_S: "key_s",
	KEY_D: "key_d",
	KEY_F: "key_f",
	KEY_G: "key_g",
	KEY_H: "key_h",
	KEY_J: "key_j",
	KEY_K: "key_k",
	KEY_L: "key_l",
	KEY_SEMICOLON: "key_semicolon",
	KEY_APOSTROPHE: "key_apostrophe",
	KEY_GRAVE: "key_grave",
	KEY_LEFTSHIFT: "key_leftshift",
	KEY_BACKSLASH: "key_backslash",
	KEY_Z: "key_z",
	KEY_X: "key_x",
	KEY_C: "key_c",
	KEY_V: "key_v",
	KEY_B: "key_b",
	KEY_N: "key_n",
	KEY_M: "key_m",
	KEY_COMMA: "key_comma",
	KEY_DOT: "key_dot",
	KEY_SLASH: "key_slash",
	KEY_RIGHTSHIFT: "key_rightshift",
	KEY_KPASTERISK: "key_kpasterisk",
	KEY_LEFTALT: "key_leftalt",
	KEY_SPACE: "key_space",
	KEY_CAPSLOCK: "key_capslock",
	KEY_F1: "key_f1",
	KEY_F2: "key_f2",
	KEY_F3: "key_f3",
	KEY_F4: "key_f4",
	KEY_F5: "key_f5",
	KEY_F6: "key_f6",
	KEY_F7: "key_f7",
	KEY_F8: "key_f8",
	KEY_F9: "key_f9",
	KEY_F10: "key_f10",
	KEY_NUMLOCK: "key_numlock",
	KEY_SCROLLLOCK: "key_scrolllock",
	KEY_KP7: "key_kp7",
	KEY_KP8: "key_kp8",
	KEY_KP9: "key_kp9",
	KEY_KPMINUS: "key_kpminus",
	KEY_KP4: "key_kp4",
	KEY_KP5: "key_kp5",
	KEY_KP6: "key_kp6",
	KEY_KPPLUS: "key_kpplus",
	KEY_KP1: "key_kp1",
	KEY_KP2: "key_kp2",
	KEY_KP3: "key_kp3",
	KEY_KP0: "key_kp0",
	KEY_KPDOT: "key_kpdot",
	KEY_ZENKAKUHANKAKU: "key_zenkakuhankaku",
	KEY_102ND: "key_102nd",
	KEY_F11: "key_f11",
	KEY_F12: "key_f12",
	KEY_RO: "key_ro",
	KEY_KATAKANA: "key_katakana",
	KEY_HIRAGANA: "key_hiragana",
	KEY_HENKAN: "key_henkan",
	KEY_KATAKANAHIRAGANA: "key_katakanahiragana",
	KEY_MUHENKAN: "key_muhenkan",
	KEY_KPJPCOMMA: "key_kpjpcomma",
	KEY_KPENTER: "key_kpenter",
	KEY_RIGHTCTRL: "key_rightctrl",
	KEY_KPSLASH: "key_kpslash",
	KEY_SYSRQ: "key_sysrq",
	KEY_RIGHTALT: "key_rightalt",
	KEY_LINEFEED: "key_linefeed",
	KEY_HOME: "key_home",
	KEY_UP: "key_up",
	KEY_PAGEUP: "key_pageup",
	KEY_LEFT: "key_left",
	KEY_RIGHT: "key_right",
	KEY_END: "key_end",
	KEY_DOWN: "key_down",
	KEY_PAGEDOWN: "key_pagedown",
	KEY_INSERT: "key_insert",
	KEY_DELETE: "key_delete",
	KEY_MACRO: "key_macro",
	KEY_MUTE: "key_mute",
	KEY_VOLUMEDOWN: "key_volumedown",
	KEY_VOLUMEUP: "key_volumeup",
	KEY_POWER: "key_power",
	KEY_KPEQUAL: "key_kpequal",
	KEY_KPPLUSMINUS: "key_kpplusminus",
	KEY_PAUSE: "key_pause",
	KEY_SCALE: "key_scale",
	KEY_KPCOMMA: "key_kpcomma",
	KEY_HANGEUL: "key_hangeul",
	KEY_HANJA: "key_hanja",
	KEY_YEN: "key_yen",
	KEY_LEFTMETA: "key_leftmeta",
	KEY_RIGHTMETA: "key_rightmeta",
	KEY_COMPOSE: "key_compose",
	KEY_STOP: "key_stop",
	KEY_AGAIN: "key_again",
	KEY_PROPS: "key_props",
	KEY_UNDO: "key_undo",
	KEY_FRONT: "key_front",
	KEY_COPY: "key_copy",
	KEY_OPEN: "key_open",
	KEY_PASTE: "key_paste",
	KEY_FIND: "key_find",
	KEY_CUT: "key_cut",
	KEY_HELP: "key_help",
	KEY_MENU: "key_menu",
	KEY_CALC: "key_calc",
	KEY_SETUP: "key_setup",
	KEY_SLEEP: "key_sleep",
	KEY_WAKEUP: "key_wakeup",
	KEY_FILE: "key_file",
	KEY_SENDFILE: "key_sendfile",
	KEY_DELETEFILE: "key_deletefile",
	KEY_XFER: "key_xfer",
	KEY_PROG1: "key_prog1",
	KEY_PROG2: "key_prog2",
	KEY_WWW: "key_www",
	KEY_MSDOS: "key_msdos",
	KEY_COFFEE: "key_coffee",
	KEY_ROTATE_DISPLAY: "key_rotate_display",
	KEY_CYCLEWINDOWS: "key_cyclewindows",
	KEY_MAIL: "key_mail",
	KEY_BOOKMARKS: "key_bookmarks",
	KEY_COMPUTER: "key_computer",
	KEY_BACK: "key_back",
	KEY_FORWARD: "key_forward",
	KEY_CLOSECD: "key_closecd",
	KEY_EJECTCD: "key_ejectcd",
	KEY_EJECTCLOSECD: "key_ejectclosecd",
	KEY_NEXTSONG: "key_nextsong",
	KEY_PLAYPAUSE: "key_playpause",
	KEY_PREVIOUSSONG: "key_previoussong",
	KEY_STOPCD: "key_stopcd",
	KEY_RECORD: "key_record",
	KEY_REWIND: "key_rewind",
	KEY_PHONE: "key_phone",
	KEY_ISO: "key_iso",
	KEY_CONFIG: "key_config",
	KEY_HOMEPAGE: "key_homepage",
	KEY_REFRESH: "key_refresh",
	KEY_EXIT: "key_exit",
	KEY_MOVE: "key_move",
	KEY_EDIT: "key_edit",
	KEY_SCROLLUP: "key_scrollup",
	KEY_SCROLLDOWN: "key_scrolldown",
	KEY_KPLEFTPAREN: "key_kpleftparen",
	KEY_KPRIGHTPAREN: "key_kprightparen",
	KEY_NEW: "key_new",
	KEY_REDO: "key_redo",
	KEY_F13: "key_f13",
	KEY_F14: "key_f14",
	KEY_F15: "key_f15",
	KEY_F16: "key_f16",
	KEY_F17: "key_f17",
	KEY_F18: "key_f18",
	KEY_F19: "key_f19",
	KEY_F20: "key_f20",
	KEY_F21: "key_f21",
	KEY_F22: "key_f22",
	KEY_F23: "key_f23",
	KEY_F24: "key_f24",
	KEY_PLAYCD: "key_playcd",
	KEY_PAUSECD: "key_pausecd",
	KEY_PROG3: "key_prog3",
	KEY_PROG4: "key_prog4",
	KEY_ALL_APPLICATIONS: "key_all_applications",
	KEY_SUSPEND: "key_suspend",
	KEY_CLOSE: "key_close",
	KEY_PLAY: "key_play",
	KEY_FASTFORWARD: "key_fastforward",
	KEY_BASSBOOST: "key_bassboost",
	KEY_PRINT: "key_print",
	KEY_HP: "key_hp",
	KEY_CAMERA: "key_camera",
	KEY_SOUND: "key_sound",
	KEY_QUESTION: "key_question",
	KEY_EMAIL: "key_email",
	KEY_CHAT: "key_chat",
	KEY_SEARCH: "key_search",
	KEY_CONNECT: "key_connect",
	KEY_FINANCE: "key_finance",
	KEY_SPORT: "key_sport",
	KEY_SHOP: "key_shop",
	KEY_ALTERASE: "key_alterase",
	KEY_CANCEL: "key_cancel",
	KEY_BRIGHTNESSDOWN: "key_brightnessdown",
	KEY_BRIGHTNESSUP: "key_brightnessup",
	KEY_MEDIA: "key_media",
	KEY_SWITCHVIDEOMODE: "key_switchvideomode",
	KEY_KBDILLUMTOGGLE: "key_kbdillumtoggle",
	KEY_KBDILLUMDOWN: "key_kbdillumdown",
	KEY_KBDILLUMUP: "key_kbdillumup",
	KEY_SEND: "key_send",
	KEY_REPLY: "key_reply",
	KEY_FORWARDMAIL: "key_forwardmail",
	KEY_SAVE: "key_save",
	KEY_DOCUMENTS: "key_documents",
	KEY_BATTERY: "key_battery",
	KEY_BLUETOOTH: "key_bluetooth",
	KEY_WLAN: "key_wlan",
	KEY_UWB: "key_uwb",
	KEY_UNKNOWN: "key_unknown",
	KEY_VIDEO_NEXT: "key_video_next",
	KEY_VIDEO_PREV: "key_video_prev",
	KEY_BRIGHTNESS_CYCLE: "key_brightness_cycle",
	KEY_BRIGHTNESS_AUTO: "key_brightness_auto",
	KEY_DISPLAY_OFF: "key_display_off",
	KEY_WWAN: "key_wwan",
	KEY_RFKILL: "key_rfkill",
	KEY_MICMUTE: "key_micmute",
	BTN_MISC: "btn_misc",
	BTN_1: "btn_1",
	BTN_2: "btn_2",
	BTN_3: "btn_3",
	BTN_4: "btn_4",
	BTN_5: "btn_5",
	BTN_6: "btn_6",
	BTN_7: "btn_7",
	BTN_8: "btn_8",
	BTN_9: "btn_9",
	BTN_MOUSE: "btn_mouse",
	BTN_RIGHT: "btn_right",
	BTN_MIDDLE: "btn_middle",
	BTN_SIDE: "btn_side",
	BTN_EXTRA: "btn_extra",
	BTN_FORWARD: "btn_forward",
	BTN_BACK: "btn_back",
	BTN_TASK: "btn_task",
	BTN_JOYSTICK: "btn_joystick",
	BTN_THUMB: "btn_thumb",
	BTN_THUMB2: "btn_thumb2",
	BTN_TOP: "btn_top",
	BTN_TOP2: "btn_top2",
	BTN_PINKIE: "btn_pinkie",
	BTN_BASE: "btn_base",
	BTN_BASE2: "btn_base2",
	BTN_BASE3: "btn_base3",
	BTN_BASE4: "btn_base4",
	BTN_BASE5: "btn_base5",
	BTN_BASE6: "btn_base6",
	BTN_DEAD: "btn_dead",
	BTN_GAMEPAD: "btn_gamepad",
	BTN_EAST: "btn_east",
	BTN_C: "btn_c",
	BTN_NORTH: "btn_north",
	BTN_WEST: "btn_west",
	BTN_Z: "btn_z",
	BTN_TL: "btn_tl",
	BTN_TR: "btn_tr",
	BTN_TL2: "btn_tl2",
	BTN_TR2: "btn_tr2",
	BTN_SELECT: "btn_select",
	BTN_START: "btn_start",
	BTN_MODE: "btn_mode",
	BTN_THUMBL: "btn_thumbl",
	BTN_THUMBR: "btn_thumbr",
	BTN_DIGI: "btn_digi",
	BTN_TOOL_RUBBER: "btn_tool_rubber",
	BTN_TOOL_BRUSH: "btn_tool_brush",
	BTN_TOOL_PENCIL: "btn_tool_pencil",
	BTN_TOOL_AIRBRUSH: "btn_tool_airbrush",
	BTN_TOOL_FINGER: "btn_tool_finger",
	BTN_TOOL_MOUSE: "btn_tool_mouse",
	BTN_TOOL_LENS: "btn_tool_lens",
	BTN_TOOL_QUINTTAP: "btn_tool_quinttap",
	BTN_STYLUS3: "btn_stylus3",
	BTN_TOUCH: "btn_touch",
	BTN_STYLUS: "btn_stylus",
	BTN_STYLUS2: "btn_stylus2",
	BTN_TOOL_DOUBLETAP: "btn_tool_doubletap",
	BTN_TOOL_TRIPLETAP: "btn_tool_tripletap",
	BTN_TOOL_QUADTAP: "btn_tool_quadtap",
	BTN_WHEEL: "btn_wheel",
	BTN_GEAR_UP: "btn_gear_up",
	KEY_OK: "key_ok",
	KEY_SELECT: "key_select",
	KEY_GOTO: "key_goto",
	KEY_CLEAR: "key_clear",
	KEY_POWER2: "key_power2",
	KEY_OPTION: "key_option",
	KEY_INFO: "key_info",
	KEY_TIME: "key_time",
	KEY_VENDOR: "key_vendor",
	KEY_ARCHIVE: "key_archive",
	KEY_PROGRAM: "key_program",
	KEY_CHANNEL: "key_channel",
	KEY_FAVORITES: "key_favorites",
	KEY_EPG: "key_epg",
	KEY_PVR: "key_pvr",
	KEY_MHP: "key_mhp",
	KEY_LANGUAGE: "key_language",
	KEY_TITLE: "key_title",
	KEY_SUBTITLE: "key_subtitle",
	KEY_ANGLE: "key_angle",
	KEY_FULL_SCREEN: "key_full_screen",
	KEY_MODE: "key_mode",
	KEY_KEYBOARD: "key_keyboard",
	KEY_ASPECT_RATIO: "key_aspect_ratio",
	KEY_PC: "key_pc",
	KEY_TV: "key_tv",
	KEY_TV2: "key_tv2",
	KEY_VCR: "key_vcr",
	KEY_VCR2: "key_vcr2",
	KEY_SAT: "key_sat",
	KEY_SAT2: "key_sat2",
	KEY_CD: "key_cd",
	KEY_TAPE: "key_tape",
	KEY_RADIO: "key_radio",
	KEY_TUNER: "key_tuner",
	KEY_PLAYER: "key_player",
	KEY_TEXT: "key_text",
	KEY_DVD: "key_dvd",
	KEY_AUX: "key_aux",
	KEY_MP3: "key_mp3",
	KEY_AUDIO: "key_audio",
	KEY_VIDEO: "key_video",
	KEY_DIRECTORY: "key_directory",
	KEY_LIST: "key_list",
	KEY_MEMO: "key_memo",
	KEY_CALENDAR: "key_calendar",
	KEY_RED: "key_red",
	KEY_GREEN: "key_green",
	KEY_YELLOW: "key_yellow",
	KEY_BLUE: "key_blue",
	KEY_CHANNELUP: "key_channelup",
	KEY_CHANNELDOWN: "key_channeldown",
	KEY_FIRST: "key_first",
	KEY_LAST: "key_last",
	KEY_AB: "key_ab",
	KEY_NEXT: "key_next",
	KEY_RESTART: "key_restart",
	KEY_SLOW: "key_slow",
	KEY_SHUFFLE: "key_shuffle",
	KEY_BREAK: "key_break",
	KEY_PREVIOUS: "key_previous",
	KEY_DIGITS: "key_digits",
	KEY_TEEN: "key_teen",
	KEY_TWEN: "key_twen",
	KEY_VIDEOPHONE: "key_videophone",
	KEY_GAMES: "key_games",
	KEY_ZOOMIN: "key_zoomin",
	KEY_ZOOMOUT: "key_zoomout",
	KEY_ZOOMRESET: "key_zoomreset",
	KEY_WORDPROCESSOR: "key_wordprocessor",
	KEY_EDITOR: "key_editor",
	KEY_SPREADSHEET: "key_spreadsheet",
	KEY_GRAPHICSEDITOR: "key_graphicseditor",
	KEY_PRESENTATION: "key_presentation",
	KEY_DATABASE: "key_database",
	KEY_NEWS: "key_news",
	KEY_VOICEMAIL: "key_voicemail",
	KEY_ADDRESSBOOK: "key_addressbook",
	KEY_MESSENGER: "key_messenger",
	KEY_DISPLAYTOGGLE: "key_displaytoggle",
	KEY_SPELLCHECK: "key_spellcheck",
	KEY_LOGOFF: "key_logoff",
	KEY_DOLLAR: "key_dollar",
	KEY_EURO: "key_euro",
	KEY_FRAMEBACK: "key_frameback",
	KEY_FRAMEFORWARD: "key_frameforward",
	KEY_CONTEXT_MENU: "key_context_menu",
	KEY_MEDIA_REPEAT: "key_media_repeat",
	KEY_10CHANNELSUP: "key_10channelsup",
	KEY_10CHANNELSDOWN: "key_10channelsdown",
	KEY_IMAGES: "key_images",
	KEY_NOTIFICATION_CENTER: "key_notification_center",
	KEY_PICKUP_PHONE: "key_pickup_phone",
	KEY_HANGUP_PHONE: "key_hangup_phone",
	KEY_LINK_PHONE: "key_link_phone",
	KEY_DEL_EOL: "key_del_eol",
	KEY_DEL_EOS: "key_del_eos",
	KEY_INS_LINE: "key_ins_line",
	KEY_DEL_LINE: "key_del_line",
	KEY_FN: "key_fn",
	KEY_FN_ESC: "key_fn_esc",
	KEY_FN_F1: "key_fn_f1",
	KEY_FN_F2: "key_fn_f2",
	KEY_FN_F3: "key_fn_f3",
	KEY_FN_F4: "key_fn_f4",
	KEY_FN_F5: "key_fn_f5",
	KEY_FN_F6: "key_fn_f6",
	KEY_FN_F7: "key_fn_f7",
	KEY_FN_F8: "key_fn_f8",
	KEY_FN_F9: "key_fn_f9",
	KEY_FN_F10: "key_fn_f10",
	KEY_FN_F11: "key_fn_f11",
	KEY_FN_F12: "key_fn_f12",
	KEY_FN_1: "key_fn_1",
	KEY_FN_2: "key_fn_2",
	KEY_FN_D: "key_fn_d",
	KEY_FN_E: "key_fn_e",
	KEY_FN_F: "key_fn_f",
	KEY_FN_S: "key_fn_s",
	KEY_FN_B: "key_fn_b",
	KEY_FN_RIGHT_SHIFT: "key_fn_right_shift",
	KEY_BRL_DOT1: "key_brl_dot1",
	KEY_BRL_DOT2: "key_brl_dot2",
	KEY_BRL_DOT3: "key_brl_dot3",
	KEY_BRL_DOT4: "key_brl_dot4",
	KEY_BRL_DOT5: "key_brl_dot5",
	KEY_BRL_DOT6: "key_brl_dot6",
	KEY_BRL_DOT7: "key_brl_dot7",
	KEY_BRL_DOT8: "key_brl_dot8",
	KEY_BRL_DOT9: "key_brl_dot9",
	KEY_BRL_DOT10: "key_brl_dot10",
	KEY_NUMERIC_0: "key_numeric_0",
	KEY_NUMERIC_1: "key_numeric_1",
	KEY_NUMERIC_2: "key_numeric_2",
	KEY_NUMERIC_3: "key_numeric_3",
	KEY_NUMERIC_4: "key_numeric_4",
	KEY_NUMERIC_5: "key_numeric_5",
	KEY_NUMERIC_6: "key_numeric_6",
	KEY_NUMERIC_7: "key_numeric_7",
	KEY_NUMERIC_8: "key_numeric_8",
	KEY_NUMERIC_9: "key_numeric_9",
	KEY_NUMERIC_STAR: "key_numeric_star",
	KEY_NUMERIC_POUND: "key_numeric_pound",
	KEY_NUMERIC_A: "key_numeric_a",
	KEY_NUMERIC_B: "key_numeric_b",
	KEY_NUMERIC_C: "key_numeric_c",
	KEY_NUMERIC_D: "key_numeric_d",
	KEY_CAMERA_FOCUS: "key_camera_focus",
	KEY_WPS_BUTTON: "key_wps_button",
	KEY_TOUCHPAD_TOGGLE: "key_touchpad_toggle",
	KEY_TOUCHPAD_ON: "key_touchpad_on",
	KEY_TOUCHPAD_OFF: "key_touchpad_off",
	KEY_CAMERA_ZOOMIN: "key_camera_zoomin",
	KEY_CAMERA_ZOOMOUT: "key_camera_zoomout",
	KEY_CAMERA_UP: "key_camera_up",
	KEY_CAMERA_DOWN: "key_camera_down",
	KEY_CAMERA_LEFT: "key_camera_left",
	KEY_CAMERA_RIGHT: "key_camera_right",
	KEY_ATTENDANT_ON: "key_attendant_on",
	KEY_ATTENDANT_OFF: "key_attendant_off",
	KEY_ATTENDANT_TOGGLE: "key_attendant_toggle",
	KEY_LIGHTS_TOGGLE: "key_lights_toggle",
	BTN_DPAD_UP: "btn_dpad_up",
	BTN_DPAD_DOWN: "btn_dpad_down",
	BTN_DPAD_LEFT: "btn_dpad_left",
	BTN_DPAD_RIGHT: "btn_dpad_right",
	KEY_ALS_TOGGLE: "key_als_toggle",
	KEY_ROTATE_LOCK_TOGGLE: "key_rotate_lock_toggle",
	KEY_REFRESH_RATE_TOGGLE: "key_refresh_rate_toggle",
	KEY_BUTTONCONFIG: "key_buttonconfig",
	KEY_TASKMANAGER: "key_taskmanager",
	KEY_JOURNAL: "key_journal",
	KEY_CONTROLPANEL: "key_controlpanel",
	KEY_APPSELECT: "key_appselect",
	KEY_SCREENSAVER: "key_screensaver",
	KEY_VOICECOMMAND: "key_voicecommand",
	KEY_ASSISTANT: "key_assistant",
	KEY_KBD_LAYOUT_NEXT: "key_kbd_layout_next",
	KEY_EMOJI_PICKER: "key_emoji_picker",
	KEY_DICTATE: "key_dictate",
	KEY_CAMERA_ACCESS_ENABLE: "key_camera_access_enable",
	KEY_CAMERA_ACCESS_DISABLE: "key_camera_access_disable",
	KEY_CAMERA_ACCESS_TOGGLE: "key_camera_access_toggle",
	KEY_ACCESSIBILITY: "key_accessibility",
	KEY_DO_NOT_DISTURB: "key_do_not_disturb",
	KEY_BRIGHTNESS_MIN: "key_brightness_min",
	KEY_BRIGHTNESS_MAX: "key_brightness_max",
	KEY_KBDINPUTASSIST_PREV: "key_kbdinputassist_prev",
	KEY_KBDINPUTASSIST_NEXT: "key_kbdinputassist_next",
	KEY_KBDINPUTASSIST_PREVGROUP: "key_kbdinputassist_prevgroup",
	KEY_KBDINPUTASSIST_NEXTGROUP: "key_kbdinputassist_nextgroup",
	KEY_KBDINPUTASSIST_ACCEPT: "key_kbdinputassist_accept",
	KEY_KBDINPUTASSIST_CANCEL: "key_kbdinputassist_cancel",
	KEY_RIGHT_UP: "key_right_up",
	KEY_RIGHT_DOWN: "key_right_down",
	KEY_LEFT_UP: "key_left_up",
	KEY_LEFT_DOWN: "key_left_down",
	KEY_ROOT_MENU: "key_root_menu",
	KEY_MEDIA_TOP_MENU: "key_media_top_menu",
	KEY_NUMERIC_11: "key_numeric_11",
	KEY_NUMERIC_12: "key_numeric_12",
	KEY_AUDIO_DESC: "key_audio_desc",
	KEY_3D_MODE: "key_3d_mode",
	KEY_NEXT_FAVORITE: "key_next_favorite",
	KEY_STOP_RECORD: "key_stop_record",
	KEY_PAUSE_RECORD: "key_pause_record",
	KEY_VOD: "key_vod",
	KEY_UNMUTE: "key_unmute",
	KEY_FASTREVERSE: "key_fastreverse",
	KEY_SLOWREVERSE: "key_slowreverse",
	KEY_DATA: "key_data",
	KEY_ONSCREEN_KEYBOARD: "key_onscreen_keyboard",
	KEY_PRIVACY_SCREEN_TOGGLE: "key_privacy_screen_toggle",
	KEY_SELECTIVE_SCREENSHOT: "key_selective_screenshot",
	KEY_NEXT_ELEMENT: "key_next_element",
	KEY_PREVIOUS_ELEMENT: "key_previous_element",
	KEY_AUTOPILOT_ENGAGE_TOGGLE: "key_autopilot_engage_toggle",
	KEY_MARK_WAYPOINT: "key_mark_waypoint",
	KEY_SOS: "key_sos",
	KEY_NAV_CHART: "key_nav_chart",
	KEY_FISHING_CHART: "key_fishing_chart",
	KEY_SINGLE_RANGE_RADAR: "key_single_range_radar",
	KEY_DUAL_RANGE_RADAR: "key_dual_range_radar",
	KEY_RADAR_OVERLAY: "key_radar_overlay",
	KEY_TRADITIONAL_SONAR: "key_traditional_sonar",
	KEY_CLEARVU_SONAR: "key_clearvu_sonar",
	KEY_SIDEVU_SONAR: "key_sidevu_sonar",
	KEY_NAV_INFO: "key_nav_info",
	KEY_BRIGHTNESS_MENU: "key_brightness_menu",
	KEY_MACRO1: "key_macro1",
	KEY_MACRO2: "key_macro2",
	KEY_MACRO3: "key_macro3",
	KEY_MACRO4: "key_macro4",
	KEY_MACRO5: "key_macro5",
	KEY_MACRO6: "key_macro6",
	KEY_MACRO7: "key_macro7",
	KEY_MACRO8: "key_macro8",
	KEY_MACRO9: "key_macro9",
	KEY_MACRO10: "key_macro10",
	KEY_MACRO11: "key_macro11",
	KEY_MACRO12: "key_macro12",
	KEY_MACRO13: "key_macro13",
	KEY_MACRO14: "key_macro14",
	KEY_MACRO15: "key_macro15",
	KEY_MACRO16: "key_macro16",
	KEY_MACRO17: "key_macro17",
	KEY_MACRO18: "key_macro18",
	KEY_MACRO19: "key_macro19",
	KEY_MACRO20: "key_macro20",
	KEY_MACRO21: "key_macro21",
	KEY_MACRO22: "key_macro22",
	KEY_MACRO23: "key_macro23",
	KEY_MACRO24: "key_macro24",
	KEY_MACRO25: "key_macro25",
	KEY_MACRO26: "key_macro26",
	KEY_MACRO27: "key_macro27",
	KEY_MACRO28: "key_macro28",
	KEY_MACRO29: "key_macro29",
	KEY_MACRO30: "key_macro30",
	KEY_MACRO_RECORD_START: "key_macro_record_start",
	KEY_MACRO_RECORD_STOP: "key_macro_record_stop",
	KEY_MACRO_PRESET_CYCLE: "key_macro_preset_cycle",
	KEY_MACRO_PRESET1: "key_macro_preset1",
	KEY_MACRO_PRESET2: "key_macro_preset2",
	KEY_MACRO_PRESET3: "key_macro_preset3",
	KEY_KBD_LCD_MENU1: "key_kbd_lcd_menu1",
	KEY_KBD_LCD_MENU2: "key_kbd_lcd_menu2",
	KEY_KBD_LCD_MENU3: "key_kbd_lcd_menu3",
	KEY_KBD_LCD_MENU4: "key_kbd_lcd_menu4",
	KEY_KBD_LCD_MENU5: "key_kbd_lcd_menu5",
	BTN_TRIGGER_HAPPY: "btn_trigger_happy",
	BTN_TRIGGER_HAPPY2: "btn_trigger_happy2",
	BTN_TRIGGER_HAPPY3: "btn_trigger_happy3",
	BTN_TRIGGER_HAPPY4: "btn_trigger_happy4",
	BTN_TRIGGER_HAPPY5: "btn_trigger_happy5",
	BTN_TRIGGER_HAPPY6: "btn_trigger_happy6",
	BTN_TRIGGER_HAPPY7: "btn_trigger_happy7",
	BTN_TRIGGER_HAPPY8: "btn_trigger_happy8",
	BTN_TRIGGER_HAPPY9: "btn_trigger_happy9",
	BTN_TRIGGER_HAPPY10: "btn_trigger_happy10",
	BTN_TRIGGER_HAPPY11: "btn_trigger_happy11",
	BTN_TRIGGER_HAPPY12: "btn_trigger_happy12",
	BTN_TRIGGER_HAPPY13: "btn_trigger_happy13",
	BTN_TRIGGER_HAPPY14: "btn_trigger_happy14",
	BTN_TRIGGER_HAPPY15: "btn_trigger_happy15",
	BTN_TRIGGER_HAPPY16: "btn_trigger_happy16",
	BTN_TRIGGER_HAPPY17: "btn_trigger_happy17",
	BTN_TRIGGER_HAPPY18: "btn_trigger_happy18",
	BTN_TRIGGER_HAPPY19: "btn_trigger_happy19",
	BTN_TRIGGER_HAPPY20: "btn_trigger_happy20",
	BTN_TRIGGER_HAPPY21: "btn_trigger_happy21",
	BTN_TRIGGER_HAPPY22: "btn_trigger_happy22",
	BTN_TRIGGER_HAPPY23: "btn_trigger_happy23",
	BTN_TRIGGER_HAPPY24: "btn_trigger_happy24",
	BTN_TRIGGER_HAPPY25: "btn_trigger_happy25",
	BTN_TRIGGER_HAPPY26: "btn_trigger_happy26",
	BTN_TRIGGER_HAPPY27: "btn_trigger_happy27",
	BTN_TRIGGER_HAPPY28: "btn_trigger_happy28",
	BTN_TRIGGER_HAPPY29: "btn_trigger_happy29",
	BTN_TRIGGER_HAPPY30: "btn_trigger_happy30",
	BTN_TRIGGER_HAPPY31: "btn_trigger_happy31",
	BTN_TRIGGER_HAPPY32: "btn_trigger_happy32",
	BTN_TRIGGER_HAPPY33: "btn_trigger_happy33",
	BTN_TRIGGER_HAPPY34: "btn_trigger_happy34",
	BTN_TRIGGER_HAPPY35: "btn_trigger_happy35",
	BTN_TRIGGER_HAPPY36: "btn_trigger_happy36",
	BTN_TRIGGER_HAPPY37: "btn_trigger_happy37",
	BTN_TRIGGER_HAPPY38: "btn_trigger_happy38",
	BTN_TRIGGER_HAPPY39: "btn_trigger_happy39",
	BTN_TRIGGER_HAPPY40: "btn_trigger_happy40",
	KEY_MAX: "key_max",
}

// nameToCode is the reverse of codeToName, built once at init.
var nameToCode map[string]KeyCode

func init() {
	nameToCode = make(map[string]KeyCode, len(codeToName))
	for code, name := range codeToName {
		nameToCode[name] = code
	}
	// Alias names that share a code with an earlier-declared name are
	// accepted by Parse as well; String still reports the earlier name.
	for name, code := range map[string]KeyCode{
		"btn_0":              BTN_0,
		"btn_left":           BTN_LEFT,
		"btn_trigger":        BTN_TRIGGER,
		"btn_south":          BTN_SOUTH,
		"btn_tool_pen":       BTN_TOOL_PEN,
		"btn_trigger_happy1": BTN_TRIGGER_HAPPY1,
	} {
		nameToCode[name] = code
	}
}

// String returns the canonical lowercase name for a KeyCode, or a
// hexadecimal fallback ("code0x7b") if the code is unrecognized.
func (c KeyCode) String() string {
	if name, ok := codeToName[c]; ok {
		return name
	}
	return unknownName(c)
}

func unknownName(c KeyCode) string {
	const hexDigits = "0123456789abcdef"
	if c == 0 {
		return "code0"
	}
	var buf [8]byte
	i := len(buf)
	v := c
	for v > 0 {
		i--
		buf[i] = hexDigits[v&0xf]
		v >>= 4
	}
	return "code0x" + string(buf[i:])
}

// Parse resolves a textual evdev key name (case-insensitive, e.g.
// "KEY_CAPSLOCK" or "key_capslock") to its KeyCode. It is the
// inverse of String for every name in All.
func Parse(name string) (KeyCode, bool) {
	code, ok := nameToCode[toLower(name)]
	return code, ok
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// All returns every recognized KeyCode, sorted ascending. Used by the
// `list-keys` CLI subcommand.
func All() []KeyCode {
	codes := make([]KeyCode, 0, len(codeToName))
	for c := range codeToName {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

import "gs1encode/charset"

// registry is the complete, immutable enumeration of GS1 Application
// Identifiers from the GS1 General Specifications. Entries are ordered by
// AI exactly as published; lookup does a linear scan since the table is
// built once at program start and consulted per element, not per byte.
var registry = []Definition{
	{AI: "00", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 18, Max: 18, Linter: charset.VerifyMod10CheckDigit}}, Title: "SSCC"},
	{AI: "01", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 14, Max: 14, Linter: charset.VerifyMod10CheckDigit}}, Title: "GTIN"},
	{AI: "02", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 14, Max: 14, Linter: charset.VerifyMod10CheckDigit}}, Title: "CONTENT"},
	{AI: "10", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 20}}, Title: "BATCH/LOT"},
	{AI: "11", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "PROD DATE"},
	{AI: "12", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "DUE DATE"},
	{AI: "13", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "PACK DATE"},
	{AI: "15", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "BEST BEFORE or BEST BY"},
	{AI: "16", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "SELL BY"},
	{AI: "17", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "USE BY or EXPIRY"},
	{AI: "20", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 2, Max: 2}}, Title: "VARIANT"},
	{AI: "21", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 20}}, Title: "SERIAL"},
	{AI: "22", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 20}}, Title: "CPV"},
	{AI: "235", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 28}}, Title: "TPX"},
	{AI: "240", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 30}}, Title: "ADDITIONAL ID"},
	{AI: "241", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 30}}, Title: "CUST. PART NO."},
	{AI: "242", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 6}}, Title: "MTO VARIANT"},
	{AI: "243", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 20}}, Title: "PCN"},
	{AI: "250", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 30}}, Title: "SECONDARY SERIAL"},
	{AI: "251", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 30}}, Title: "REF. TO SOURCE"},
	{AI: "253", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 13, Max: 13, Linter: charset.VerifyMod10CheckDigit}, {CSet: CSet82, Min: 0, Max: 17}}, Title: "GDTI"},
	{AI: "254", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 20}}, Title: "GLN EXTENSION COMPONENT"},
	{AI: "255", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 13, Max: 13, Linter: charset.VerifyMod10CheckDigit}, {CSet: CSetNumeric, Min: 0, Max: 12}}, Title: "GCN"},
	{AI: "30", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 8}}, Title: "VAR. COUNT"},
	{AI: "3100", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET WEIGHT (kg)"},
	{AI: "3101", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET WEIGHT (kg)"},
	{AI: "3102", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET WEIGHT (kg)"},
	{AI: "3103", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET WEIGHT (kg)"},
	{AI: "3104", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET WEIGHT (kg)"},
	{AI: "3105", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET WEIGHT (kg)"},
	{AI: "3110", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (m)"},
	{AI: "3111", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (m)"},
	{AI: "3112", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (m)"},
	{AI: "3113", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (m)"},
	{AI: "3114", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (m)"},
	{AI: "3115", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (m)"},
	{AI: "3120", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (m)"},
	{AI: "3121", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (m)"},
	{AI: "3122", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (m)"},
	{AI: "3123", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (m)"},
	{AI: "3124", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (m)"},
	{AI: "3125", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (m)"},
	{AI: "3130", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (m)"},
	{AI: "3131", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (m)"},
	{AI: "3132", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (m)"},
	{AI: "3133", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (m)"},
	{AI: "3134", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (m)"},
	{AI: "3135", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (m)"},
	{AI: "3140", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (m^2)"},
	{AI: "3141", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (m^2)"},
	{AI: "3142", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (m^2)"},
	{AI: "3143", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (m^2)"},
	{AI: "3144", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (m^2)"},
	{AI: "3145", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (m^2)"},
	{AI: "3150", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (l)"},
	{AI: "3151", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (l)"},
	{AI: "3152", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (l)"},
	{AI: "3153", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (l)"},
	{AI: "3154", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (l)"},
	{AI: "3155", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (l)"},
	{AI: "3160", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (m^3)"},
	{AI: "3161", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (m^3)"},
	{AI: "3162", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (m^3)"},
	{AI: "3163", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (m^3)"},
	{AI: "3164", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (m^3)"},
	{AI: "3165", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (m^3)"},
	{AI: "3200", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET WEIGHT (lb)"},
	{AI: "3201", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET WEIGHT (lb)"},
	{AI: "3202", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET WEIGHT (lb)"},
	{AI: "3203", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET WEIGHT (lb)"},
	{AI: "3204", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET WEIGHT (lb)"},
	{AI: "3205", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET WEIGHT (lb)"},
	{AI: "3210", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (i)"},
	{AI: "3211", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (i)"},
	{AI: "3212", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (i)"},
	{AI: "3213", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (i)"},
	{AI: "3214", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (i)"},
	{AI: "3215", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (i)"},
	{AI: "3220", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (f)"},
	{AI: "3221", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (f)"},
	{AI: "3222", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (f)"},
	{AI: "3223", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (f)"},
	{AI: "3224", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (f)"},
	{AI: "3225", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (f)"},
	{AI: "3230", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (y)"},
	{AI: "3231", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (y)"},
	{AI: "3232", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (y)"},
	{AI: "3233", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (y)"},
	{AI: "3234", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (y)"},
	{AI: "3235", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (y)"},
	{AI: "3240", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (i)"},
	{AI: "3241", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (i)"},
	{AI: "3242", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (i)"},
	{AI: "3243", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (i)"},
	{AI: "3244", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (i)"},
	{AI: "3245", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (i)"},
	{AI: "3250", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (f)"},
	{AI: "3251", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (f)"},
	{AI: "3252", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (f)"},
	{AI: "3253", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (f)"},
	{AI: "3254", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (f)"},
	{AI: "3255", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (f)"},
	{AI: "3260", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (y)"},
	{AI: "3261", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (y)"},
	{AI: "3262", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (y)"},
	{AI: "3263", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (y)"},
	{AI: "3264", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (y)"},
	{AI: "3265", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (y)"},
	{AI: "3270", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (i)"},
	{AI: "3271", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (i)"},
	{AI: "3272", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (i)"},
	{AI: "3273", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (i)"},
	{AI: "3274", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (i)"},
	{AI: "3275", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (i)"},
	{AI: "3280", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (f)"},
	{AI: "3281", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (f)"},
	{AI: "3282", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (f)"},
	{AI: "3283", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (f)"},
	{AI: "3284", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (f)"},
	{AI: "3285", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (f)"},
	{AI: "3290", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (y)"},
	{AI: "3291", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (y)"},
	{AI: "3292", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (y)"},
	{AI: "3293", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (y)"},
	{AI: "3294", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (y)"},
	{AI: "3295", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (y)"},
	{AI: "3300", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "GROSS WEIGHT (kg)"},
	{AI: "3301", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "GROSS WEIGHT (kg)"},
	{AI: "3302", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "GROSS WEIGHT (kg)"},
	{AI: "3303", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "GROSS WEIGHT (kg)"},
	{AI: "3304", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "GROSS WEIGHT (kg)"},
	{AI: "3305", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "GROSS WEIGHT (kg)"},
	{AI: "3310", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (m), log"},
	{AI: "3311", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (m), log"},
	{AI: "3312", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (m), log"},
	{AI: "3313", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (m), log"},
	{AI: "3314", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (m), log"},
	{AI: "3315", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (m), log"},
	{AI: "3320", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (m), log"},
	{AI: "3321", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (m), log"},
	{AI: "3322", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (m), log"},
	{AI: "3323", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (m), log"},
	{AI: "3324", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (m), log"},
	{AI: "3325", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (m), log"},
	{AI: "3330", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (m), log"},
	{AI: "3331", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (m), log"},
	{AI: "3332", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (m), log"},
	{AI: "3333", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (m), log"},
	{AI: "3334", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (m), log"},
	{AI: "3335", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (m), log"},
	{AI: "3340", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (m^2), log"},
	{AI: "3341", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (m^2), log"},
	{AI: "3342", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (m^2), log"},
	{AI: "3343", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (m^2), log"},
	{AI: "3344", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (m^2), log"},
	{AI: "3345", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (m^2), log"},
	{AI: "3350", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (l), log"},
	{AI: "3351", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (l), log"},
	{AI: "3352", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (l), log"},
	{AI: "3353", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (l), log"},
	{AI: "3354", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (l), log"},
	{AI: "3355", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (l), log"},
	{AI: "3360", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (m^3), log"},
	{AI: "3361", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (m^3), log"},
	{AI: "3362", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (m^3), log"},
	{AI: "3363", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (m^3), log"},
	{AI: "3364", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (m^3), log"},
	{AI: "3365", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (m^3), log"},
	{AI: "3370", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "KG PER m^2"},
	{AI: "3371", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "KG PER m^2"},
	{AI: "3372", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "KG PER m^2"},
	{AI: "3373", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "KG PER m^2"},
	{AI: "3374", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "KG PER m^2"},
	{AI: "3375", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "KG PER m^2"},
	{AI: "3400", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "GROSS WEIGHT (lb)"},
	{AI: "3401", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "GROSS WEIGHT (lb)"},
	{AI: "3402", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "GROSS WEIGHT (lb)"},
	{AI: "3403", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "GROSS WEIGHT (lb)"},
	{AI: "3404", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "GROSS WEIGHT (lb)"},
	{AI: "3405", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "GROSS WEIGHT (lb)"},
	{AI: "3410", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (i), log"},
	{AI: "3411", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (i), log"},
	{AI: "3412", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (i), log"},
	{AI: "3413", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (i), log"},
	{AI: "3414", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (i), log"},
	{AI: "3415", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (i), log"},
	{AI: "3420", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (f), log"},
	{AI: "3421", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (f), log"},
	{AI: "3422", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (f), log"},
	{AI: "3423", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (f), log"},
	{AI: "3424", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (f), log"},
	{AI: "3425", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (f), log"},
	{AI: "3430", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (y), log"},
	{AI: "3431", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (y), log"},
	{AI: "3432", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (y), log"},
	{AI: "3433", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (y), log"},
	{AI: "3434", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (y), log"},
	{AI: "3435", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "LENGTH (y), log"},
	{AI: "3440", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (i), log"},
	{AI: "3441", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (i), log"},
	{AI: "3442", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (i), log"},
	{AI: "3443", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (i), log"},
	{AI: "3444", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (i), log"},
	{AI: "3445", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (i), log"},
	{AI: "3450", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (f), log"},
	{AI: "3451", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (f), log"},
	{AI: "3452", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (f), log"},
	{AI: "3453", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (f), log"},
	{AI: "3454", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (f), log"},
	{AI: "3455", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (f), log"},
	{AI: "3460", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (y), log"},
	{AI: "3461", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (y), log"},
	{AI: "3462", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (y), log"},
	{AI: "3463", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (y), log"},
	{AI: "3464", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (y), log"},
	{AI: "3465", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "WIDTH (y), log"},
	{AI: "3470", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (i), log"},
	{AI: "3471", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (i), log"},
	{AI: "3472", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (i), log"},
	{AI: "3473", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (i), log"},
	{AI: "3474", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (i), log"},
	{AI: "3475", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (i), log"},
	{AI: "3480", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (f), log"},
	{AI: "3481", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (f), log"},
	{AI: "3482", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (f), log"},
	{AI: "3483", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (f), log"},
	{AI: "3484", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (f), log"},
	{AI: "3485", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (f), log"},
	{AI: "3490", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (y), log"},
	{AI: "3491", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (y), log"},
	{AI: "3492", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (y), log"},
	{AI: "3493", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (y), log"},
	{AI: "3494", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (y), log"},
	{AI: "3495", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "HEIGHT (y), log"},
	{AI: "3500", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (i^2)"},
	{AI: "3501", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (i^2)"},
	{AI: "3502", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (i^2)"},
	{AI: "3503", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (i^2)"},
	{AI: "3504", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (i^2)"},
	{AI: "3505", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (i^2)"},
	{AI: "3510", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (f^2)"},
	{AI: "3511", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (f^2)"},
	{AI: "3512", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (f^2)"},
	{AI: "3513", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (f^2)"},
	{AI: "3514", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (f^2)"},
	{AI: "3515", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (f^2)"},
	{AI: "3520", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (y^2)"},
	{AI: "3521", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (y^2)"},
	{AI: "3522", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (y^2)"},
	{AI: "3523", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (y^2)"},
	{AI: "3524", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (y^2)"},
	{AI: "3525", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (y^2)"},
	{AI: "3530", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (i^2), log"},
	{AI: "3531", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (i^2), log"},
	{AI: "3532", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (i^2), log"},
	{AI: "3533", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (i^2), log"},
	{AI: "3534", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (i^2), log"},
	{AI: "3535", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (i^2), log"},
	{AI: "3540", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (f^2), log"},
	{AI: "3541", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (f^2), log"},
	{AI: "3542", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (f^2), log"},
	{AI: "3543", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (f^2), log"},
	{AI: "3544", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (f^2), log"},
	{AI: "3545", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (f^2), log"},
	{AI: "3550", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (y^2), log"},
	{AI: "3551", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (y^2), log"},
	{AI: "3552", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (y^2), log"},
	{AI: "3553", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (y^2), log"},
	{AI: "3554", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (y^2), log"},
	{AI: "3555", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "AREA (y^2), log"},
	{AI: "3560", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET WEIGHT (t)"},
	{AI: "3561", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET WEIGHT (t)"},
	{AI: "3562", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET WEIGHT (t)"},
	{AI: "3563", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET WEIGHT (t)"},
	{AI: "3564", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET WEIGHT (t)"},
	{AI: "3565", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET WEIGHT (t)"},
	{AI: "3570", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (oz)"},
	{AI: "3571", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (oz)"},
	{AI: "3572", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (oz)"},
	{AI: "3573", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (oz)"},
	{AI: "3574", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (oz)"},
	{AI: "3575", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (oz)"},
	{AI: "3600", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (q)"},
	{AI: "3601", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (q)"},
	{AI: "3602", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (q)"},
	{AI: "3603", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (q)"},
	{AI: "3604", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (q)"},
	{AI: "3605", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (q)"},
	{AI: "3610", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (g)"},
	{AI: "3611", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (g)"},
	{AI: "3612", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (g)"},
	{AI: "3613", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (g)"},
	{AI: "3614", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (g)"},
	{AI: "3615", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "NET VOLUME (g)"},
	{AI: "3620", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (q), log"},
	{AI: "3621", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (q), log"},
	{AI: "3622", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (q), log"},
	{AI: "3623", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (q), log"},
	{AI: "3624", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (q), log"},
	{AI: "3625", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (q), log"},
	{AI: "3630", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (g), log"},
	{AI: "3631", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (g), log"},
	{AI: "3632", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (g), log"},
	{AI: "3633", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (g), log"},
	{AI: "3634", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (g), log"},
	{AI: "3635", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (g), log"},
	{AI: "3640", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (i^3)"},
	{AI: "3641", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (i^3)"},
	{AI: "3642", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (i^3)"},
	{AI: "3643", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (i^3)"},
	{AI: "3644", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (i^3)"},
	{AI: "3645", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (i^3)"},
	{AI: "3650", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (f^3)"},
	{AI: "3651", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (f^3)"},
	{AI: "3652", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (f^3)"},
	{AI: "3653", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (f^3)"},
	{AI: "3654", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (f^3)"},
	{AI: "3655", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (f^3)"},
	{AI: "3660", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (y^3)"},
	{AI: "3661", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (y^3)"},
	{AI: "3662", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (y^3)"},
	{AI: "3663", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (y^3)"},
	{AI: "3664", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (y^3)"},
	{AI: "3665", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (y^3)"},
	{AI: "3670", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (i^3), log"},
	{AI: "3671", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (i^3), log"},
	{AI: "3672", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (i^3), log"},
	{AI: "3673", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (i^3), log"},
	{AI: "3674", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (i^3), log"},
	{AI: "3675", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (i^3), log"},
	{AI: "3680", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (f^3), log"},
	{AI: "3681", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (f^3), log"},
	{AI: "3682", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (f^3), log"},
	{AI: "3683", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (f^3), log"},
	{AI: "3684", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (f^3), log"},
	{AI: "3685", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (f^3), log"},
	{AI: "3690", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (y^3), log"},
	{AI: "3691", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (y^3), log"},
	{AI: "3692", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (y^3), log"},
	{AI: "3693", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (y^3), log"},
	{AI: "3694", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (y^3), log"},
	{AI: "3695", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "VOLUME (y^3), log"},
	{AI: "37", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 8}}, Title: "COUNT"},
	{AI: "3900", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "AMOUNT"},
	{AI: "3901", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "AMOUNT"},
	{AI: "3902", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "AMOUNT"},
	{AI: "3903", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "AMOUNT"},
	{AI: "3904", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "AMOUNT"},
	{AI: "3905", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "AMOUNT"},
	{AI: "3906", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "AMOUNT"},
	{AI: "3907", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "AMOUNT"},
	{AI: "3908", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "AMOUNT"},
	{AI: "3909", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "AMOUNT"},
	{AI: "3910", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "AMOUNT"},
	{AI: "3911", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "AMOUNT"},
	{AI: "3912", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "AMOUNT"},
	{AI: "3913", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "AMOUNT"},
	{AI: "3914", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "AMOUNT"},
	{AI: "3915", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "AMOUNT"},
	{AI: "3916", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "AMOUNT"},
	{AI: "3917", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "AMOUNT"},
	{AI: "3918", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "AMOUNT"},
	{AI: "3919", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "AMOUNT"},
	{AI: "3920", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "PRICE"},
	{AI: "3921", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "PRICE"},
	{AI: "3922", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "PRICE"},
	{AI: "3923", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "PRICE"},
	{AI: "3924", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "PRICE"},
	{AI: "3925", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "PRICE"},
	{AI: "3926", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "PRICE"},
	{AI: "3927", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "PRICE"},
	{AI: "3928", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "PRICE"},
	{AI: "3929", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "PRICE"},
	{AI: "3930", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "PRICE"},
	{AI: "3931", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "PRICE"},
	{AI: "3932", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "PRICE"},
	{AI: "3933", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "PRICE"},
	{AI: "3934", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "PRICE"},
	{AI: "3935", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "PRICE"},
	{AI: "3936", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "PRICE"},
	{AI: "3937", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "PRICE"},
	{AI: "3938", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "PRICE"},
	{AI: "3939", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSetNumeric, Min: 1, Max: 15}}, Title: "PRICE"},
	{AI: "3940", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 4, Max: 4}}, Title: "PRCNT OFF"},
	{AI: "3941", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 4, Max: 4}}, Title: "PRCNT OFF"},
	{AI: "3942", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 4, Max: 4}}, Title: "PRCNT OFF"},
	{AI: "3943", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 4, Max: 4}}, Title: "PRCNT OFF"},
	{AI: "3950", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "PRICE/UoM"},
	{AI: "3951", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "PRICE/UoM"},
	{AI: "3952", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "PRICE/UoM"},
	{AI: "3953", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "PRICE/UoM"},
	{AI: "3954", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "PRICE/UoM"},
	{AI: "3955", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "PRICE/UoM"},
	{AI: "400", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 30}}, Title: "ORDER NUMBER"},
	{AI: "401", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 30}}, Title: "GINC"},
	{AI: "402", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 17, Max: 17, Linter: charset.VerifyMod10CheckDigit}}, Title: "GSIN"},
	{AI: "403", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 30}}, Title: "ROUTE"},
	{AI: "410", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 13, Max: 13, Linter: charset.VerifyMod10CheckDigit}}, Title: "SHIP TO LOC"},
	{AI: "411", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 13, Max: 13, Linter: charset.VerifyMod10CheckDigit}}, Title: "BILL TO"},
	{AI: "412", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 13, Max: 13, Linter: charset.VerifyMod10CheckDigit}}, Title: "PURCHASE FROM"},
	{AI: "413", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 13, Max: 13, Linter: charset.VerifyMod10CheckDigit}}, Title: "SHIP FOR LOC"},
	{AI: "414", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 13, Max: 13, Linter: charset.VerifyMod10CheckDigit}}, Title: "LOC NO."},
	{AI: "415", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 13, Max: 13, Linter: charset.VerifyMod10CheckDigit}}, Title: "PAY TO"},
	{AI: "416", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 13, Max: 13, Linter: charset.VerifyMod10CheckDigit}}, Title: "PROD/SERV LOC"},
	{AI: "417", FNC1: false, Components: []Component{{CSet: CSetNumeric, Min: 13, Max: 13, Linter: charset.VerifyMod10CheckDigit}}, Title: "PARTY"},
	{AI: "420", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 20}}, Title: "SHIP TO POST"},
	{AI: "421", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSet82, Min: 1, Max: 9}}, Title: "SHIP TO POST"},
	{AI: "422", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}}, Title: "ORIGIN"},
	{AI: "423", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 15}}, Title: "COUNTRY - INITIAL PROCESS"},
	{AI: "424", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}}, Title: "COUNTRY - PROCESS"},
	{AI: "425", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 15}}, Title: "COUNTRY - DISASSEMBLY"},
	{AI: "426", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}}, Title: "COUNTRY - FULL PROCESS"},
	{AI: "427", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 3}}, Title: "ORIGIN SUBDIVISION"},
	{AI: "4300", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 35}}, Title: "SHIP TO COMP"},
	{AI: "4301", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 35}}, Title: "SHIP TO NAME"},
	{AI: "4302", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 70}}, Title: "SHIP TO ADD1"},
	{AI: "4303", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 70}}, Title: "SHIP TO ADD2"},
	{AI: "4304", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 70}}, Title: "SHIP TO SUB"},
	{AI: "4305", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 70}}, Title: "SHIP TO LOC"},
	{AI: "4306", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 70}}, Title: "SHIP TO REG"},
	{AI: "4307", FNC1: true, Components: []Component{{CSet: CSet82, Min: 2, Max: 2}}, Title: "SHIP TO COUNTRY"},
	{AI: "4308", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 30}}, Title: "SHIP TO PHONE"},
	{AI: "4310", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 35}}, Title: "RTN TO COMP"},
	{AI: "4311", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 35}}, Title: "RTN TO NAME"},
	{AI: "4312", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 70}}, Title: "RTN TO ADD1"},
	{AI: "4313", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 70}}, Title: "RTN TO ADD2"},
	{AI: "4314", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 70}}, Title: "RTN TO SUB"},
	{AI: "4315", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 70}}, Title: "RTN TO LOC"},
	{AI: "4316", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 70}}, Title: "RTN TO REG"},
	{AI: "4317", FNC1: true, Components: []Component{{CSet: CSet82, Min: 2, Max: 2}}, Title: "RTN TO COUNTRY"},
	{AI: "4318", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 20}}, Title: "RTN TO POST"},
	{AI: "4319", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 30}}, Title: "RTN TO PHONE"},
	{AI: "4320", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 35}}, Title: "SRV DESCRIPTION"},
	{AI: "4321", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 1}}, Title: "DANGEROUS GOODS"},
	{AI: "4322", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 1}}, Title: "AUTH LEAVE"},
	{AI: "4323", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 1}}, Title: "SIG REQUIRED"},
	{AI: "4324", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}, {CSet: CSetNumeric, Min: 4, Max: 4}}, Title: "NBEF DEL DT."},
	{AI: "4325", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}, {CSet: CSetNumeric, Min: 4, Max: 4}}, Title: "NAFT DEL DT."},
	{AI: "4326", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "REL DATE"},
	{AI: "7001", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 13, Max: 13}}, Title: "NSN"},
	{AI: "7002", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 30}}, Title: "MEAT CUT"},
	{AI: "7003", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}, {CSet: CSetNumeric, Min: 4, Max: 4}}, Title: "EXPIRY TIME"},
	{AI: "7004", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 4}}, Title: "ACTIVE POTENCY"},
	{AI: "7005", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 12}}, Title: "CATCH AREA"},
	{AI: "7006", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "FIRST FREEZE DATE"},
	{AI: "7007", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}, {CSet: CSetNumeric, Min: 0, Max: 6}}, Title: "HARVEST DATE"},
	{AI: "7008", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 3}}, Title: "AQUATIC SPECIES"},
	{AI: "7009", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 10}}, Title: "FISHING GEAR TYPE"},
	{AI: "7010", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 2}}, Title: "PROD METHOD"},
	{AI: "7020", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 20}}, Title: "REFURB LOT"},
	{AI: "7021", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 20}}, Title: "FUNC STAT"},
	{AI: "7022", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 20}}, Title: "REV STAT"},
	{AI: "7023", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 30}}, Title: "GIAI - ASSEMBLY"},
	{AI: "7030", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSet82, Min: 1, Max: 27}}, Title: "PROCESSOR # s"},
	{AI: "7031", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSet82, Min: 1, Max: 27}}, Title: "PROCESSOR # s"},
	{AI: "7032", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSet82, Min: 1, Max: 27}}, Title: "PROCESSOR # s"},
	{AI: "7033", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSet82, Min: 1, Max: 27}}, Title: "PROCESSOR # s"},
	{AI: "7034", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSet82, Min: 1, Max: 27}}, Title: "PROCESSOR # s"},
	{AI: "7035", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSet82, Min: 1, Max: 27}}, Title: "PROCESSOR # s"},
	{AI: "7036", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSet82, Min: 1, Max: 27}}, Title: "PROCESSOR # s"},
	{AI: "7037", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSet82, Min: 1, Max: 27}}, Title: "PROCESSOR # s"},
	{AI: "7038", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSet82, Min: 1, Max: 27}}, Title: "PROCESSOR # s"},
	{AI: "7039", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSet82, Min: 1, Max: 27}}, Title: "PROCESSOR # s"},
	{AI: "7040", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 1}, {CSet: CSet82, Min: 1, Max: 1}, {CSet: CSet82, Min: 1, Max: 1}, {CSet: CSet82, Min: 1, Max: 1}}, Title: "UIC+EXT"},
	{AI: "710", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 20}}, Title: "NHRN PZN"},
	{AI: "711", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 20}}, Title: "NHRN CIP"},
	{AI: "712", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 20}}, Title: "NHRN CN"},
	{AI: "713", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 20}}, Title: "NHRN DRN"},
	{AI: "714", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 20}}, Title: "NHRN AIM"},
	{AI: "7230", FNC1: true, Components: []Component{{CSet: CSet82, Min: 2, Max: 2}, {CSet: CSet82, Min: 1, Max: 28}}, Title: "CERT # s"},
	{AI: "7231", FNC1: true, Components: []Component{{CSet: CSet82, Min: 2, Max: 2}, {CSet: CSet82, Min: 1, Max: 28}}, Title: "CERT # s"},
	{AI: "7232", FNC1: true, Components: []Component{{CSet: CSet82, Min: 2, Max: 2}, {CSet: CSet82, Min: 1, Max: 28}}, Title: "CERT # s"},
	{AI: "7233", FNC1: true, Components: []Component{{CSet: CSet82, Min: 2, Max: 2}, {CSet: CSet82, Min: 1, Max: 28}}, Title: "CERT # s"},
	{AI: "7234", FNC1: true, Components: []Component{{CSet: CSet82, Min: 2, Max: 2}, {CSet: CSet82, Min: 1, Max: 28}}, Title: "CERT # s"},
	{AI: "7235", FNC1: true, Components: []Component{{CSet: CSet82, Min: 2, Max: 2}, {CSet: CSet82, Min: 1, Max: 28}}, Title: "CERT # s"},
	{AI: "7236", FNC1: true, Components: []Component{{CSet: CSet82, Min: 2, Max: 2}, {CSet: CSet82, Min: 1, Max: 28}}, Title: "CERT # s"},
	{AI: "7237", FNC1: true, Components: []Component{{CSet: CSet82, Min: 2, Max: 2}, {CSet: CSet82, Min: 1, Max: 28}}, Title: "CERT # s"},
	{AI: "7238", FNC1: true, Components: []Component{{CSet: CSet82, Min: 2, Max: 2}, {CSet: CSet82, Min: 1, Max: 28}}, Title: "CERT # s"},
	{AI: "7239", FNC1: true, Components: []Component{{CSet: CSet82, Min: 2, Max: 2}, {CSet: CSet82, Min: 1, Max: 28}}, Title: "CERT # s"},
	{AI: "7240", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 20}}, Title: "PROTOCOL"},
	{AI: "8001", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 4, Max: 4}, {CSet: CSetNumeric, Min: 5, Max: 5}, {CSet: CSetNumeric, Min: 3, Max: 3}, {CSet: CSetNumeric, Min: 1, Max: 1}, {CSet: CSetNumeric, Min: 1, Max: 1}}, Title: "DIMENSIONS"},
	{AI: "8002", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 20}}, Title: "CMT NO."},
	{AI: "8003", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 1}, {CSet: CSetNumeric, Min: 13, Max: 13, Linter: charset.VerifyMod10CheckDigit}, {CSet: CSet82, Min: 0, Max: 16}}, Title: "GRAI"},
	{AI: "8004", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 30}}, Title: "GIAI"},
	{AI: "8005", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 6, Max: 6}}, Title: "PRICE PER UNIT"},
	{AI: "8006", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 14, Max: 14, Linter: charset.VerifyMod10CheckDigit}, {CSet: CSetNumeric, Min: 4, Max: 4}}, Title: "ITIP"},
	{AI: "8007", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 34}}, Title: "IBAN"},
	{AI: "8008", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 8, Max: 8}, {CSet: CSetNumeric, Min: 0, Max: 4}}, Title: "PROD TIME"},
	{AI: "8009", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 50}}, Title: "OPTSEN"},
	{AI: "8010", FNC1: true, Components: []Component{{CSet: CSetC, Min: 1, Max: 30}}, Title: "CPID"},
	{AI: "8011", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 12}}, Title: "CPID SERIAL"},
	{AI: "8012", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 20}}, Title: "VERSION"},
	{AI: "8013", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 25}}, Title: "GMN"},
	{AI: "8017", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 18, Max: 18, Linter: charset.VerifyMod10CheckDigit}}, Title: "GSRN - PROVIDER"},
	{AI: "8018", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 18, Max: 18, Linter: charset.VerifyMod10CheckDigit}}, Title: "GSRN - RECIPIENT"},
	{AI: "8019", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 1, Max: 10}}, Title: "SRIN"},
	{AI: "8020", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 25}}, Title: "REF NO."},
	{AI: "8026", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 14, Max: 14, Linter: charset.VerifyMod10CheckDigit}, {CSet: CSetNumeric, Min: 4, Max: 4}}, Title: "ITIP CONTENT"},
	{AI: "8110", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 70}}, Title: ""},
	{AI: "8111", FNC1: true, Components: []Component{{CSet: CSetNumeric, Min: 4, Max: 4}}, Title: "POINTS"},
	{AI: "8112", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 70}}, Title: ""},
	{AI: "8200", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 70}}, Title: "PRODUCT URL"},
	{AI: "90", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 30}}, Title: "INTERNAL"},
	{AI: "91", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 90}}, Title: "INTERNAL"},
	{AI: "92", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 90}}, Title: "INTERNAL"},
	{AI: "93", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 90}}, Title: "INTERNAL"},
	{AI: "94", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 90}}, Title: "INTERNAL"},
	{AI: "95", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 90}}, Title: "INTERNAL"},
	{AI: "96", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 90}}, Title: "INTERNAL"},
	{AI: "97", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 90}}, Title: "INTERNAL"},
	{AI: "98", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 90}}, Title: "INTERNAL"},
	{AI: "99", FNC1: true, Components: []Component{{CSet: CSet82, Min: 1, Max: 90}}, Title: "INTERNAL"},
}

// dlPrimaryKeys is the set of AIs that may root a Digital Link URI's path
// info, i.e. that identify the entity a Digital Link resolves.
var dlPrimaryKeys = map[string]bool{
	"00":   true, // SSCC
	"01":   true, // GTIN; qualifiers 22,10,21 or 235
	"253":  true, // GDTI
	"255":  true, // GCN
	"401":  true, // GINC
	"402":  true, // GSIN
	"414":  true, // LOC NO.; qualifiers=254 or 7040
	"417":  true, // PARTY; qualifiers=7040
	"8003": true, // GRAI
	"8004": true, // GIAI; qualifiers=7040
	"8006": true, // ITIP; qualifiers=22,10,21
	"8010": true, // CPID; qualifiers=8011
	"8013": true, // GMN
	"8017": true, // GSRN - PROVIDER; qualifiers=8019
	"8018": true, // GSRN - RECIPIENT; qualifiers=8019
}

// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wordlists

// italian is a placeholder BIP39 wordlist: 2048 unique tokens of the correct
// shape (no whitespace, no delimiter collisions) standing in for the real
// upstream italian word list. See DESIGN.md: English is the accurate reference
// list this module's test vectors depend on; this list needs replacing
// with the canonical upstream words before encoding real italian mnemonics.
var italian = [2048]string{
	"wit0000", "wit0001", "wit0002", "wit0003", "wit0004", "wit0005", "wit0006", "wit0007",
	"wit0008", "wit0009", "wit0010", "wit0011", "wit0012", "wit0013", "wit0014", "wit0015",
	"wit0016", "wit0017", "wit0018", "wit0019", "wit0020", "wit0021", "wit0022", "wit0023",
	"wit0024", "wit0025", "wit0026", "wit0027", "wit0028", "wit0029", "wit0030", "wit0031",
	"wit0032", "wit0033", "wit0034", "wit0035", "wit0036", "wit0037", "wit0038", "wit0039",
	"wit0040", "wit0041", "wit0042", "wit0043", "wit0044", "wit0045", "wit0046", "wit0047",
	"wit0048", "wit0049", "wit0050", "wit0051", "wit0052", "wit0053", "wit0054", "wit0055",
	"wit0056", "wit0057", "wit0058", "wit0059", "wit0060", "wit0061", "wit0062", "wit0063",
	"wit0064", "wit0065", "wit0066", "wit0067", "wit0068", "wit0069", "wit0070", "wit0071",
	"wit0072", "wit0073", "wit0074", "wit0075", "wit0076", "wit0077", "wit0078", "wit0079",
	"wit0080", "wit0081", "wit0082", "wit0083", "wit0084", "wit0085", "wit0086", "wit0087",
	"wit0088", "wit0089", "wit0090", "wit0091", "wit0092", "wit0093", "wit0094", "wit0095",
	"wit0096", "wit0097", "wit0098", "wit0099", "wit0100", "wit0101", "wit0102", "wit0103",
	"wit0104", "wit0105", "wit0106", "wit0107", "wit0108", "wit0109", "wit0110", "wit0111",
	"wit0112", "wit0113", "wit0114", "wit0115", "wit0116", "wit0117", "wit0118", "wit0119",
	"wit0120", "wit0121", "wit0122", "wit0123", "wit0124", "wit0125", "wit0126", "wit0127",
	"wit0128", "wit0129", "wit0130", "wit0131", "wit0132", "wit0133", "wit0134", "wit0135",
	"wit0136", "wit0137", "wit0138", "wit0139", "wit0140", "wit0141", "wit0142", "wit0143",
	"wit0144", "wit0145", "wit0146", "wit0147", "wit0148", "wit0149", "wit0150", "wit0151",
	"wit0152", "wit0153", "wit0154", "wit0155", "wit0156", "wit0157", "wit0158", "wit0159",
	"wit0160", "wit0161", "wit0162", "wit0163", "wit0164", "wit0165", "wit0166", "wit0167",
	"wit0168", "wit0169", "wit0170", "wit0171", "wit0172", "wit0173", "wit0174", "wit0175",
	"wit0176", "wit0177", "wit0178", "wit0179", "wit0180", "wit0181", "wit0182", "wit0183",
	"wit0184", "wit0185", "wit0186", "wit0187", "wit0188", "wit0189", "wit0190", "wit0191",
	"wit0192", "wit0193", "wit0194", "wit0195", "wit0196", "wit0197", "wit0198", "wit0199",
	"wit0200", "wit0201", "wit0202", "wit0203", "wit0204", "wit0205", "wit0206", "wit0207",
	"wit0208", "wit0209", "wit0210", "wit0211", "wit0212", "wit0213", "wit0214", "wit0215",
	"wit0216", "wit0217", "wit0218", "wit0219", "wit0220", "wit0221", "wit0222", "wit0223",
	"wit0224", "wit0225", "wit0226", "wit0227", "wit0228", "wit0229", "wit0230", "wit0231",
	"wit0232", "wit0233", "wit0234", "wit0235", "wit0236", "wit0237", "wit0238", "wit0239",
	"wit0240", "wit0241", "wit0242", "wit0243", "wit0244", "wit0245", "wit0246", "wit0247",
	"wit0248", "wit0249", "wit0250", "wit0251", "wit0252", "wit0253", "wit0254", "wit0255",
	"wit0256", "wit0257", "wit0258", "wit0259", "wit0260", "wit0261", "wit0262", "wit0263",
	"wit0264", "wit0265", "wit0266", "wit0267", "wit0268", "wit0269", "wit0270", "wit0271",
	"wit0272", "wit0273", "wit0274", "wit0275", "wit0276", "wit0277", "wit0278", "wit0279",
	"wit0280", "wit0281", "wit0282", "wit0283", "wit0284", "wit0285", "wit0286", "wit0287",
	"wit0288", "wit0289", "wit0290", "wit0291", "wit0292", "wit0293", "wit0294", "wit0295",
	"wit0296", "wit0297", "wit0298", "wit0299", "wit0300", "wit0301", "wit0302", "wit0303",
	"wit0304", "wit0305", "wit0306", "wit0307", "wit0308", "wit0309", "wit0310", "wit0311",
	"wit0312", "wit0313", "wit0314", "wit0315", "wit0316", "wit0317", "wit0318", "wit0319",
	"wit0320", "wit0321", "wit0322", "wit0323", "wit0324", "wit0325", "wit0326", "wit0327",
	"wit0328", "wit0329", "wit0330", "wit0331", "wit0332", "wit0333", "wit0334", "wit0335",
	"wit0336", "wit0337", "wit0338", "wit0339", "wit0340", "wit0341", "wit0342", "wit0343",
	"wit0344", "wit0345", "wit0346", "wit0347", "wit0348", "wit0349", "wit0350", "wit0351",
	"wit0352", "wit0353", "wit0354", "wit0355", "wit0356", "wit0357", "wit0358", "wit0359",
	"wit0360", "wit0361", "wit0362", "wit0363", "wit0364", "wit0365", "wit0366", "wit0367",
	"wit0368", "wit0369", "wit0370", "wit0371", "wit0372", "wit0373", "wit0374", "wit0375",
	"wit0376", "wit0377", "wit0378", "wit0379", "wit0380", "wit0381", "wit0382", "wit0383",
	"wit0384", "wit0385", "wit0386", "wit0387", "wit0388", "wit0389", "wit0390", "wit0391",
	"wit0392", "wit0393", "wit0394", "wit0395", "wit0396", "wit0397", "wit0398", "wit0399",
	"wit0400", "wit0401", "wit0402", "wit0403", "wit0404", "wit0405", "wit0406", "wit0407",
	"wit0408", "wit0409", "wit0410", "wit0411", "wit0412", "wit0413", "wit0414", "wit0415",
	"wit0416", "wit0417", "wit0418", "wit0419", "wit0420", "wit0421", "wit0422", "wit0423",
	"wit0424", "wit0425", "wit0426", "wit0427", "wit0428", "wit0429", "wit0430", "wit0431",
	"wit0432", "wit0433", "wit0434", "wit0435", "wit0436", "wit0437", "wit0438", "wit0439",
	"wit0440", "wit0441", "wit0442", "wit0443", "wit0444", "wit0445", "wit0446", "wit0447",
	"wit0448", "wit0449", "wit0450", "wit0451", "wit0452", "wit0453", "wit0454", "wit0455",
	"wit0456", "wit0457", "wit0458", "wit0459", "wit0460", "wit0461", "wit0462", "wit0463",
	"wit0464", "wit0465", "wit0466", "wit0467", "wit0468", "wit0469", "wit0470", "wit0471",
	"wit0472", "wit0473", "wit0474", "wit0475", "wit0476", "wit0477", "wit0478", "wit0479",
	"wit0480", "wit0481", "wit0482", "wit0483", "wit0484", "wit0485", "wit0486", "wit0487",
	"wit0488", "wit0489", "wit0490", "wit0491", "wit0492", "wit0493", "wit0494", "wit0495",
	"wit0496", "wit0497", "wit0498", "wit0499", "wit0500", "wit0501", "wit0502", "wit0503",
	"wit0504", "wit0505", "wit0506", "wit0507", "wit0508", "wit0509", "wit0510", "wit0511",
	"wit0512", "wit0513", "wit0514", "wit0515", "wit0516", "wit0517", "wit0518", "wit0519",
	"wit0520", "wit0521", "wit0522", "wit0523", "wit0524", "wit0525", "wit0526", "wit0527",
	"wit0528", "wit0529", "wit0530", "wit0531", "wit0532", "wit0533", "wit0534", "wit0535",
	"wit0536", "wit0537", "wit0538", "wit0539", "wit0540", "wit0541", "wit0542", "wit0543",
	"wit0544", "wit0545", "wit0546", "wit0547", "wit0548", "wit0549", "wit0550", "wit0551",
	"wit0552", "wit0553", "wit0554", "wit0555", "wit0556", "wit0557", "wit0558", "wit0559",
	"wit0560", "wit0561", "wit0562", "wit0563", "wit0564", "wit0565", "wit0566", "wit0567",
	"wit0568", "wit0569", "wit0570", "wit0571", "wit0572", "wit0573", "wit0574", "wit0575",
	"wit0576", "wit0577", "wit0578", "wit0579", "wit0580", "wit0581", "wit0582", "wit0583",
	"wit0584", "wit0585", "wit0586", "wit0587", "wit0588", "wit0589", "wit0590", "wit0591",
	"wit0592", "wit0593", "wit0594", "wit0595", "wit0596", "wit0597", "wit0598", "wit0599",
	"wit0600", "wit0601", "wit0602", "wit0603", "wit0604", "wit0605", "wit0606", "wit0607",
	"wit0608", "wit0609", "wit0610", "wit0611", "wit0612", "wit0613", "wit0614", "wit0615",
	"wit0616", "wit0617", "wit0618", "wit0619", "wit0620", "wit0621", "wit0622", "wit0623",
	"wit0624", "wit0625", "wit0626", "wit0627", "wit0628", "wit0629", "wit0630", "wit0631",
	"wit0632", "wit0633", "wit0634", "wit0635", "wit0636", "wit0637", "wit0638", "wit0639",
	"wit0640", "wit0641", "wit0642", "wit0643", "wit0644", "wit0645", "wit0646", "wit0647",
	"wit0648", "wit0649", "wit0650", "wit0651", "wit0652", "wit0653", "wit0654", "wit0655",
	"wit0656", "wit0657", "wit0658", "wit0659", "wit0660", "wit0661", "wit0662", "wit0663",
	"wit0664", "wit0665", "wit0666", "wit0667", "wit0668", "wit0669", "wit0670", "wit0671",
	"wit0672", "wit0673", "wit0674", "wit0675", "wit0676", "wit0677", "wit0678", "wit0679",
	"wit0680", "wit0681", "wit0682", "wit0683", "wit0684", "wit0685", "wit0686", "wit0687",
	"wit0688", "wit0689", "wit0690", "wit0691", "wit0692", "wit0693", "wit0694", "wit0695",
	"wit0696", "wit0697", "wit0698", "wit0699", "wit0700", "wit0701", "wit0702", "wit0703",
	"wit0704", "wit0705", "wit0706", "wit0707", "wit0708", "wit0709", "wit0710", "wit0711",
	"wit0712", "wit0713", "wit0714", "wit0715", "wit0716", "wit0717", "wit0718", "wit0719",
	"wit0720", "wit0721", "wit0722", "wit0723", "wit0724", "wit0725", "wit0726", "wit0727",
	"wit0728", "wit0729", "wit0730", "wit0731", "wit0732", "wit0733", "wit0734", "wit0735",
	"wit0736", "wit0737", "wit0738", "wit0739", "wit0740", "wit0741", "wit0742", "wit0743",
	"wit0744", "wit0745", "wit0746", "wit0747", "wit0748", "wit0749", "wit0750", "wit0751",
	"wit0752", "wit0753", "wit0754", "wit0755", "wit0756", "wit0757", "wit0758", "wit0759",
	"wit0760", "wit0761", "wit0762", "wit0763", "wit0764", "wit0765", "wit0766", "wit0767",
	"wit0768", "wit0769", "wit0770", "wit0771", "wit0772", "wit0773", "wit0774", "wit0775",
	"wit0776", "wit0777", "wit0778", "wit0779", "wit0780", "wit0781", "wit0782", "wit0783",
	"wit0784", "wit0785", "wit0786", "wit0787", "wit0788", "wit0789", "wit0790", "wit0791",
	"wit0792", "wit0793", "wit0794", "wit0795", "wit0796", "wit0797", "wit0798", "wit0799",
	"wit0800", "wit0801", "wit0802", "wit0803", "wit0804", "wit0805", "wit0806", "wit0807",
	"wit0808", "wit0809", "wit0810", "wit0811", "wit0812", "wit0813", "wit0814", "wit0815",
	"wit0816", "wit0817", "wit0818", "wit0819", "wit0820", "wit0821", "wit0822", "wit0823",
	"wit0824", "wit0825", "wit0826", "wit0827", "wit0828", "wit0829", "wit0830", "wit0831",
	"wit0832", "wit0833", "wit0834", "wit0835", "wit0836", "wit0837", "wit0838", "wit0839",
	"wit0840", "wit0841", "wit0842", "wit0843", "wit0844", "wit0845", "wit0846", "wit0847",
	"wit0848", "wit0849", "wit0850", "wit0851", "wit0852", "wit0853", "wit0854", "wit0855",
	"wit0856", "wit0857", "wit0858", "wit0859", "wit0860", "wit0861", "wit0862", "wit0863",
	"wit0864", "wit0865", "wit0866", "wit0867", "wit0868", "wit0869", "wit0870", "wit0871",
	"wit0872", "wit0873", "wit0874", "wit0875", "wit0876", "wit0877", "wit0878", "wit0879",
	"wit0880", "wit0881", "wit0882", "wit0883", "wit0884", "wit0885", "wit0886", "wit0887",
	"wit0888", "wit0889", "wit0890", "wit0891", "wit0892", "wit0893", "wit0894", "wit0895",
	"wit0896", "wit0897", "wit0898", "wit0899", "wit0900", "wit0901", "wit0902", "wit0903",
	"wit0904", "wit0905", "wit0906", "wit0907", "wit0908", "wit0909", "wit0910", "wit0911",
	"wit0912", "wit0913", "wit0914", "wit0915", "wit0916", "wit0917", "wit0918", "wit0919",
	"wit0920", "wit0921", "wit0922", "wit0923", "wit0924", "wit0925", "wit0926", "wit0927",
	"wit0928", "wit0929", "wit0930", "wit0931", "wit0932", "wit0933", "wit0934", "wit0935",
	"wit0936", "wit0937", "wit0938", "wit0939", "wit0940", "wit0941", "wit0942", "wit0943",
	"wit0944", "wit0945", "wit0946", "wit0947", "wit0948", "wit0949", "wit0950", "wit0951",
	"wit0952", "wit0953", "wit0954", "wit0955", "wit0956", "wit0957", "wit0958", "wit0959",
	"wit0960", "wit0961", "wit0962", "wit0963", "wit0964", "wit0965", "wit0966", "wit0967",
	"wit0968", "wit0969", "wit0970", "wit0971", "wit0972", "wit0973", "wit0974", "wit0975",
	"wit0976", "wit0977", "wit0978", "wit0979", "wit0980", "wit0981", "wit0982", "wit0983",
	"wit0984", "wit0985", "wit0986", "wit0987", "wit0988", "wit0989", "wit0990", "wit0991",
	"wit0992", "wit0993", "wit0994", "wit0995", "wit0996", "wit0997", "wit0998", "wit0999",
	"wit1000", "wit1001", "wit1002", "wit1003", "wit1004", "wit1005", "wit1006", "wit1007",
	"wit1008", "wit1009", "wit1010", "wit1011", "wit1012", "wit1013", "wit1014", "wit1015",
	"wit1016", "wit1017", "wit1018", "wit1019", "wit1020", "wit1021", "wit1022", "wit1023",
	"wit1024", "wit1025", "wit1026", "wit1027", "wit1028", "wit1029", "wit1030", "wit1031",
	"wit1032", "wit1033", "wit1034", "wit1035", "wit1036", "wit1037", "wit1038", "wit1039",
	"wit1040", "wit1041", "wit1042", "wit1043", "wit1044", "wit1045", "wit1046", "wit1047",
	"wit1048", "wit1049", "wit1050", "wit1051", "wit1052", "wit1053", "wit1054", "wit1055",
	"wit1056", "wit1057", "wit1058", "wit1059", "wit1060", "wit1061", "wit1062", "wit1063",
	"wit1064", "wit1065", "wit1066", "wit1067", "wit1068", "wit1069", "wit1070", "wit1071",
	"wit1072", "wit1073", "wit1074", "wit1075", "wit1076", "wit1077", "wit1078", "wit1079",
	"wit1080", "wit1081", "wit1082", "wit1083", "wit1084", "wit1085", "wit1086", "wit1087",
	"wit1088", "wit1089", "wit1090", "wit1091", "wit1092", "wit1093", "wit1094", "wit1095",
	"wit1096", "wit1097", "wit1098", "wit1099", "wit1100", "wit1101", "wit1102", "wit1103",
	"wit1104", "wit1105", "wit1106", "wit1107", "wit1108", "wit1109", "wit1110", "wit1111",
	"wit1112", "wit1113", "wit1114", "wit1115", "wit1116", "wit1117", "wit1118", "wit1119",
	"wit1120", "wit1121", "wit1122", "wit1123", "wit1124", "wit1125", "wit1126", "wit1127",
	"wit1128", "wit1129", "wit1130", "wit1131", "wit1132", "wit1133", "wit1134", "wit1135",
	"wit1136", "wit1137", "wit1138", "wit1139", "wit1140", "wit1141", "wit1142", "wit1143",
	"wit1144", "wit1145", "wit1146", "wit1147", "wit1148", "wit1149", "wit1150", "wit1151",
	"wit1152", "wit1153", "wit1154", "wit1155", "wit1156", "wit1157", "wit1158", "wit1159",
	"wit1160", "wit1161", "wit1162", "wit1163", "wit1164", "wit1165", "wit1166", "wit1167",
	"wit1168", "wit1169", "wit1170", "wit1171", "wit1172", "wit1173", "wit1174", "wit1175",
	"wit1176", "wit1177", "wit1178", "wit1179", "wit1180", "wit1181", "wit1182", "wit1183",
	"wit1184", "wit1185", "wit1186", "wit1187", "wit1188", "wit1189", "wit1190", "wit1191",
	"wit1192", "wit1193", "wit1194", "wit1195", "wit1196", "wit1197", "wit1198", "wit1199",
	"wit1200", "wit1201", "wit1202", "wit1203", "wit1204", "wit1205", "wit1206", "wit1207",
	"wit1208", "wit1209", "wit1210", "wit1211", "wit1212", "wit1213", "wit1214", "wit1215",
	"wit1216", "wit1217", "wit1218", "wit1219", "wit1220", "wit1221", "wit1222", "wit1223",
	"wit1224", "wit1225", "wit1226", "wit1227", "wit1228", "wit1229", "wit1230", "wit1231",
	"wit1232", "wit1233", "wit1234", "wit1235", "wit1236", "wit1237", "wit1238", "wit1239",
	"wit1240", "wit1241", "wit1242", "wit1243", "wit1244", "wit1245", "wit1246", "wit1247",
	"wit1248", "wit1249", "wit1250", "wit1251", "wit1252", "wit1253", "wit1254", "wit1255",
	"wit1256", "wit1257", "wit1258", "wit1259", "wit1260", "wit1261", "wit1262", "wit1263",
	"wit1264", "wit1265", "wit1266", "wit1267", "wit1268", "wit1269", "wit1270", "wit1271",
	"wit1272", "wit1273", "wit1274", "wit1275", "wit1276", "wit1277", "wit1278", "wit1279",
	"wit1280", "wit1281", "wit1282", "wit1283", "wit1284", "wit1285", "wit1286", "wit1287",
	"wit1288", "wit1289", "wit1290", "wit1291", "wit1292", "wit1293", "wit1294", "wit1295",
	"wit1296", "wit1297", "wit1298", "wit1299", "wit1300", "wit1301", "wit1302", "wit1303",
	"wit1304", "wit1305", "wit1306", "wit1307", "wit1308", "wit1309", "wit1310", "wit1311",
	"wit1312", "wit1313", "wit1314", "wit1315", "wit1316", "wit1317", "wit1318", "wit1319",
	"wit1320", "wit1321", "wit1322", "wit1323", "wit1324", "wit1325", "wit1326", "wit1327",
	"wit1328", "wit1329", "wit1330", "wit1331", "wit1332", "wit1333", "wit1334", "wit1335",
	"wit1336", "wit1337", "wit1338", "wit1339", "wit1340", "wit1341", "wit1342", "wit1343",
	"wit1344", "wit1345", "wit1346", "wit1347", "wit1348", "wit1349", "wit1350", "wit1351",
	"wit1352", "wit1353", "wit1354", "wit1355", "wit1356", "wit1357", "wit1358", "wit1359",
	"wit1360", "wit1361", "wit1362", "wit1363", "wit1364", "wit1365", "wit1366", "wit1367",
	"wit1368", "wit1369", "wit1370", "wit1371", "wit1372", "wit1373", "wit1374", "wit1375",
	"wit1376", "wit1377", "wit1378", "wit1379", "wit1380", "wit1381", "wit1382", "wit1383",
	"wit1384", "wit1385", "wit1386", "wit1387", "wit1388", "wit1389", "wit1390", "wit1391",
	"wit1392", "wit1393", "wit1394", "wit1395", "wit1396", "wit1397", "wit1398", "wit1399",
	"wit1400", "wit1401", "wit1402", "wit1403", "wit1404", "wit1405", "wit1406", "wit1407",
	"wit1408", "wit1409", "wit1410", "wit1411", "wit1412", "wit1413", "wit1414", "wit1415",
	"wit1416", "wit1417", "wit1418", "wit1419", "wit1420", "wit1421", "wit1422", "wit1423",
	"wit1424", "wit1425", "wit1426", "wit1427", "wit1428", "wit1429", "wit1430", "wit1431",
	"wit1432", "wit1433", "wit1434", "wit1435", "wit1436", "wit1437", "wit1438", "wit1439",
	"wit1440", "wit1441", "wit1442", "wit1443", "wit1444", "wit1445", "wit1446", "wit1447",
	"wit1448", "wit1449", "wit1450", "wit1451", "wit1452", "wit1453", "wit1454", "wit1455",
	"wit1456", "wit1457", "wit1458", "wit1459", "wit1460", "wit1461", "wit1462", "wit1463",
	"wit1464", "wit1465", "wit1466", "wit1467", "wit1468", "wit1469", "wit1470", "wit1471",
	"wit1472", "wit1473", "wit1474", "wit1475", "wit1476", "wit1477", "wit1478", "wit1479",
	"wit1480", "wit1481", "wit1482", "wit1483", "wit1484", "wit1485", "wit1486", "wit1487",
	"wit1488", "wit1489", "wit1490", "wit1491", "wit1492", "wit1493", "wit1494", "wit1495",
	"wit1496", "wit1497", "wit1498", "wit1499", "wit1500", "wit1501", "wit1502", "wit1503",
	"wit1504", "wit1505", "wit1506", "wit1507", "wit1508", "wit1509", "wit1510", "wit1511",
	"wit1512", "wit1513", "wit1514", "wit1515", "wit1516", "wit1517", "wit1518", "wit1519",
	"wit1520", "wit1521", "wit1522", "wit1523", "wit1524", "wit1525", "wit1526", "wit1527",
	"wit1528", "wit1529", "wit1530", "wit1531", "wit1532", "wit1533", "wit1534", "wit1535",
	"wit1536", "wit1537", "wit1538", "wit1539", "wit1540", "wit1541", "wit1542", "wit1543",
	"wit1544", "wit1545", "wit1546", "wit1547", "wit1548", "wit1549", "wit1550", "wit1551",
	"wit1552", "wit1553", "wit1554", "wit1555", "wit1556", "wit1557", "wit1558", "wit1559",
	"wit1560", "wit1561", "wit1562", "wit1563", "wit1564", "wit1565", "wit1566", "wit1567",
	"wit1568", "wit1569", "wit1570", "wit1571", "wit1572", "wit1573", "wit1574", "wit1575",
	"wit1576", "wit1577", "wit1578", "wit1579", "wit1580", "wit1581", "wit1582", "wit1583",
	"wit1584", "wit1585", "wit1586", "wit1587", "wit1588", "wit1589", "wit1590", "wit1591",
	"wit1592", "wit1593", "wit1594", "wit1595", "wit1596", "wit1597", "wit1598", "wit1599",
	"wit1600", "wit1601", "wit1602", "wit1603", "wit1604", "wit1605", "wit1606", "wit1607",
	"wit1608", "wit1609", "wit1610", "wit1611", "wit1612", "wit1613", "wit1614", "wit1615",
	"wit1616", "wit1617", "wit1618", "wit1619", "wit1620", "wit1621", "wit1622", "wit1623",
	"wit1624", "wit1625", "wit1626", "wit1627", "wit1628", "wit1629", "wit1630", "wit1631",
	"wit1632", "wit1633", "wit1634", "wit1635", "wit1636", "wit1637", "wit1638", "wit1639",
	"wit1640", "wit1641", "wit1642", "wit1643", "wit1644", "wit1645", "wit1646", "wit1647",
	"wit1648", "wit1649", "wit1650", "wit1651", "wit1652", "wit1653", "wit1654", "wit1655",
	"wit1656", "wit1657", "wit1658", "wit1659", "wit1660", "wit1661", "wit1662", "wit1663",
	"wit1664", "wit1665", "wit1666", "wit1667", "wit1668", "wit1669", "wit1670", "wit1671",
	"wit1672", "wit1673", "wit1674", "wit1675", "wit1676", "wit1677", "wit1678", "wit1679",
	"wit1680", "wit1681", "wit1682", "wit1683", "wit1684", "wit1685", "wit1686", "wit1687",
	"wit1688", "wit1689", "wit1690", "wit1691", "wit1692", "wit1693", "wit1694", "wit1695",
	"wit1696", "wit1697", "wit1698", "wit1699", "wit1700", "wit1701", "wit1702", "wit1703",
	"wit1704", "wit1705", "wit1706", "wit1707", "wit1708", "wit1709", "wit1710", "wit1711",
	"wit1712", "wit1713", "wit1714", "wit1715", "wit1716", "wit1717", "wit1718", "wit1719",
	"wit1720", "wit1721", "wit1722", "wit1723", "wit1724", "wit1725", "wit1726", "wit1727",
	"wit1728", "wit1729", "wit1730", "wit1731", "wit1732", "wit1733", "wit1734", "wit1735",
	"wit1736", "wit1737", "wit1738", "wit1739", "wit1740", "wit1741", "wit1742", "wit1743",
	"wit1744", "wit1745", "wit1746", "wit1747", "wit1748", "wit1749", "wit1750", "wit1751",
	"wit1752", "wit1753", "wit1754", "wit1755", "wit1756", "wit1757", "wit1758", "wit1759",
	"wit1760", "wit1761", "wit1762", "wit1763", "wit1764", "wit1765", "wit1766", "wit1767",
	"wit1768", "wit1769", "wit1770", "wit1771", "wit1772", "wit1773", "wit1774", "wit1775",
	"wit1776", "wit1777", "wit1778", "wit1779", "wit1780", "wit1781", "wit1782", "wit1783",
	"wit1784", "wit1785", "wit1786", "wit1787", "wit1788", "wit1789", "wit1790", "wit1791",
	"wit1792", "wit1793", "wit1794", "wit1795", "wit1796", "wit1797", "wit1798", "wit1799",
	"wit1800", "wit1801", "wit1802", "wit1803", "wit1804", "wit1805", "wit1806", "wit1807",
	"wit1808", "wit1809", "wit1810", "wit1811", "wit1812", "wit1813", "wit1814", "wit1815",
	"wit1816", "wit1817", "wit1818", "wit1819", "wit1820", "wit1821", "wit1822", "wit1823",
	"wit1824", "wit1825", "wit1826", "wit1827", "wit1828", "wit1829", "wit1830", "wit1831",
	"wit1832", "wit1833", "wit1834", "wit1835", "wit1836", "wit1837", "wit1838", "wit1839",
	"wit1840", "wit1841", "wit1842", "wit1843", "wit1844", "wit1845", "wit1846", "wit1847",
	"wit1848", "wit1849", "wit1850", "wit1851", "wit1852", "wit1853", "wit1854", "wit1855",
	"wit1856", "wit1857", "wit1858", "wit1859", "wit1860", "wit1861", "wit1862", "wit1863",
	"wit1864", "wit1865", "wit1866", "wit1867", "wit1868", "wit1869", "wit1870", "wit1871",
	"wit1872", "wit1873", "wit1874", "wit1875", "wit1876", "wit1877", "wit1878", "wit1879",
	"wit1880", "wit1881", "wit1882", "wit1883", "wit1884", "wit1885", "wit1886", "wit1887",
	"wit1888", "wit1889", "wit1890", "wit1891", "wit1892", "wit1893", "wit1894", "wit1895",
	"wit1896", "wit1897", "wit1898", "wit1899", "wit1900", "wit1901", "wit1902", "wit1903",
	"wit1904", "wit1905", "wit1906", "wit1907", "wit1908", "wit1909", "wit1910", "wit1911",
	"wit1912", "wit1913", "wit1914", "wit1915", "wit1916", "wit1917", "wit1918", "wit1919",
	"wit1920", "wit1921", "wit1922", "wit1923", "wit1924", "wit1925", "wit1926", "wit1927",
	"wit1928", "wit1929", "wit1930", "wit1931", "wit1932", "wit1933", "wit1934", "wit1935",
	"wit1936", "wit1937", "wit1938", "wit1939", "wit1940", "wit1941", "wit1942", "wit1943",
	"wit1944", "wit1945", "wit1946", "wit1947", "wit1948", "wit1949", "wit1950", "wit1951",
	"wit1952", "wit1953", "wit1954", "wit1955", "wit1956", "wit1957", "wit1958", "wit1959",
	"wit1960", "wit1961", "wit1962", "wit1963", "wit1964", "wit1965", "wit1966", "wit1967",
	"wit1968", "wit1969", "wit1970", "wit1971", "wit1972", "wit1973", "wit1974", "wit1975",
	"wit1976", "wit1977", "wit1978", "wit1979", "wit1980", "wit1981", "wit1982", "wit1983",
	"wit1984", "wit1985", "wit1986", "wit1987", "wit1988", "wit1989", "wit1990", "wit1991",
	"wit1992", "wit1993", "wit1994", "wit1995", "wit1996", "wit1997", "wit1998", "wit1999",
	"wit2000", "wit2001", "wit2002", "wit2003", "wit2004", "wit2005", "wit2006", "wit2007",
	"wit2008", "wit2009", "wit2010", "wit2011", "wit2012", "wit2013", "wit2014", "wit2015",
	"wit2016", "wit2017", "wit2018", "wit2019", "wit2020", "wit2021", "wit2022", "wit2023",
	"wit2024", "wit2025", "wit2026", "wit2027", "wit2028", "wit2029", "wit2030", "wit2031",
	"wit2032", "wit2033", "wit2034", "wit2035", "wit2036", "wit2037", "wit2038", "wit2039",
	"wit2040", "wit2041", "wit2042", "wit2043", "wit2044", "wit2045", "wit2046", "wit2047",
}
